package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"auth-api/internal/application/controller"
	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/model"
	"auth-api/internal/domain/usecase/user"
)

type stubUserUseCase struct {
	users map[string]*entity.User
}

func newStubUserUseCase() *stubUserUseCase {
	return &stubUserUseCase{users: make(map[string]*entity.User)}
}

func (s *stubUserUseCase) FindAll(page int, size int) (*model.Page[entity.User], error) {
	var all []entity.User
	for _, u := range s.users {
		all = append(all, *u)
	}
	return model.NewPage(all, page, size, int64(len(all))), nil
}

func (s *stubUserUseCase) FindByUsernamePart(usernamePart string, page int, size int) (*model.Page[entity.User], error) {
	return s.FindAll(page, size)
}

func (s *stubUserUseCase) FindByID(id string) (*entity.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (s *stubUserUseCase) Create(dto model.CreateUserDTO) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username == dto.Username {
			return nil, user.ErrExistentUsername
		}
	}
	created := &entity.User{
		ID:       "user-" + dto.Username,
		Username: dto.Username,
		Email:    dto.Email,
		FullName: dto.FullName,
	}
	s.users[created.ID] = created
	return created, nil
}

func (s *stubUserUseCase) UpdateByID(id string, dto model.UpdateUserDTO) (*entity.User, error) {
	existing, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	existing.Username = dto.Username
	existing.Email = dto.Email
	existing.FullName = dto.FullName
	return existing, nil
}

func (s *stubUserUseCase) DeleteByID(id string) error {
	if _, ok := s.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *stubUserUseCase) CountAll() (int64, error) {
	return int64(len(s.users)), nil
}

func setupUserAPI() (*echo.Echo, *stubUserUseCase) {
	e := echo.New()
	useCase := newStubUserUseCase()
	userController := controller.NewUserController(e.Group(""), useCase)
	userController.InitUserRoutes()
	return e, useCase
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateUserEndpoint(t *testing.T) {
	e, _ := setupUserAPI()

	rec := doRequest(e, http.MethodPost, "/users",
		`{"username":"jdoe","email":"jdoe@example.com","password":"pass","fullName":"John Doe"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created entity.User
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Username != "jdoe" {
		t.Errorf("username = %q, want %q", created.Username, "jdoe")
	}
}

func TestCreateUserEndpointDuplicate(t *testing.T) {
	e, _ := setupUserAPI()

	body := `{"username":"jdoe","email":"jdoe@example.com","password":"pass"}`
	if rec := doRequest(e, http.MethodPost, "/users", body); rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d, want %d", rec.Code, http.StatusCreated)
	}

	rec := doRequest(e, http.MethodPost, "/users", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error message in the response body")
	}
}

func TestFindUserEndpointNotFound(t *testing.T) {
	e, _ := setupUserAPI()

	rec := doRequest(e, http.MethodGet, "/users/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestFindAllUsersEndpoint(t *testing.T) {
	e, useCase := setupUserAPI()
	useCase.users["u1"] = &entity.User{ID: "u1", Username: "jdoe"}

	rec := doRequest(e, http.MethodGet, "/users?page=0&size=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var page model.Page[entity.User]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if page.TotalElements != 1 {
		t.Errorf("totalElements = %d, want 1", page.TotalElements)
	}
}

func TestUpdateUserEndpointNotFound(t *testing.T) {
	e, _ := setupUserAPI()

	rec := doRequest(e, http.MethodPut, "/users/missing",
		`{"username":"jdoe","email":"jdoe@example.com"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDeleteUserEndpoint(t *testing.T) {
	e, useCase := setupUserAPI()
	useCase.users["u1"] = &entity.User{ID: "u1", Username: "jdoe"}

	rec := doRequest(e, http.MethodDelete, "/users/u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.DeleteUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected a deletion message")
	}

	if rec := doRequest(e, http.MethodDelete, "/users/u1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
