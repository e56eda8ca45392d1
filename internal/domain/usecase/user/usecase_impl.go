package user

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/gateway/api"
	"auth-api/internal/domain/gateway/cache"
	"auth-api/internal/domain/gateway/db"
	"auth-api/internal/domain/gateway/queue"
	"auth-api/internal/domain/model"
	"auth-api/pkg/log"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Config holds the tunables of the user use case.
type Config struct {
	EventQueueName string
	// ScreenPasswords enables breach screening on create/update
	ScreenPasswords bool
	// EnforceScreening rejects breached passwords instead of only logging them
	EnforceScreening bool
}

type userUseCase struct {
	config        Config
	gateway       db.UserGateway
	cacheGateway  cache.UserCacheGateway
	queueSender   queue.Sender
	breachGateway api.BreachGateway
}

func NewUserUseCase(config Config, gateway db.UserGateway, cacheGateway cache.UserCacheGateway,
	queueSender queue.Sender, breachGateway api.BreachGateway) UseCase {
	return &userUseCase{
		config:        config,
		gateway:       gateway,
		cacheGateway:  cacheGateway,
		queueSender:   queueSender,
		breachGateway: breachGateway,
	}
}

func (uc *userUseCase) FindAll(page int, size int) (*model.Page[entity.User], error) {
	users, totalElements, err := uc.fetchUsersAndCountInParallel(page, size, "")
	if err != nil {
		return nil, err
	}
	return model.NewPage(users, page, size, totalElements), nil
}

func (uc *userUseCase) FindByUsernamePart(usernamePart string, page int, size int) (*model.Page[entity.User], error) {
	users, totalElements, err := uc.fetchUsersAndCountInParallel(page, size, usernamePart)
	if err != nil {
		return nil, err
	}
	return model.NewPage(users, page, size, totalElements), nil
}

// fetchUsersAndCountInParallel fetches the page content and the total count concurrently
func (uc *userUseCase) fetchUsersAndCountInParallel(page int, size int, usernamePart string) ([]entity.User, int64, error) {
	var wg sync.WaitGroup
	var users []entity.User
	var totalElements int64
	var usersErr, countErr error

	offset := page * size

	wg.Add(1)
	go func() {
		defer wg.Done()
		if usernamePart != "" {
			users, usersErr = uc.gateway.FindByUsernamePart(usernamePart, offset, size)
		} else {
			users, usersErr = uc.gateway.FindAll(offset, size)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if usernamePart != "" {
			totalElements, countErr = uc.gateway.CountByUsernamePart(usernamePart)
		} else {
			totalElements, countErr = uc.gateway.CountAll()
		}
	}()

	wg.Wait()

	if usersErr != nil {
		return nil, 0, usersErr
	}
	if countErr != nil {
		return nil, 0, countErr
	}
	return users, totalElements, nil
}

func (uc *userUseCase) FindByID(id string) (*entity.User, error) {
	ctx := context.Background()

	if cached, found, err := uc.cacheGateway.GetUser(ctx, id); err == nil && found {
		return cached, nil
	}

	found, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}

	if err := uc.cacheGateway.SetUser(ctx, found); err != nil {
		log.Warnf("failed to cache user %s: %v", found.ID, err)
	}
	return found, nil
}

func (uc *userUseCase) Create(dto model.CreateUserDTO) (*entity.User, error) {
	if dto.Username == "" {
		return nil, ErrEmptyUsername
	}
	if dto.Password == "" {
		return nil, ErrEmptyPassword
	}
	if !isValidEmail(dto.Email) {
		return nil, ErrInvalidEmail
	}

	if err := uc.checkDuplicates(dto.Username, dto.Email, ""); err != nil {
		return nil, err
	}

	if err := uc.screenPassword(dto.Username, dto.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := uc.gateway.Create(entity.User{
		Username:     dto.Username,
		Email:        dto.Email,
		FullName:     dto.FullName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(model.UserCreated, created)
	return created, nil
}

func (uc *userUseCase) UpdateByID(id string, dto model.UpdateUserDTO) (*entity.User, error) {
	if dto.Username == "" {
		return nil, ErrEmptyUsername
	}
	if !isValidEmail(dto.Email) {
		return nil, ErrInvalidEmail
	}

	existing, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if err := uc.checkDuplicates(dto.Username, dto.Email, existing.ID); err != nil {
		return nil, err
	}

	existing.Username = dto.Username
	existing.Email = dto.Email
	existing.FullName = dto.FullName

	if dto.Password != "" {
		if err := uc.screenPassword(dto.Username, dto.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hash)
	}

	updated, err := uc.gateway.UpdateByID(id, *existing)
	if err != nil {
		return nil, err
	}

	uc.evictFromCache(updated.ID)
	uc.publishEvent(model.UserUpdated, updated)
	return updated, nil
}

func (uc *userUseCase) DeleteByID(id string) error {
	existing, err := uc.gateway.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := uc.gateway.DeleteByID(id); err != nil {
		return err
	}

	uc.evictFromCache(id)
	uc.publishEvent(model.UserDeleted, existing)
	return nil
}

func (uc *userUseCase) CountAll() (int64, error) {
	return uc.gateway.CountAll()
}

// checkDuplicates rejects usernames and emails already registered to another user
func (uc *userUseCase) checkDuplicates(username string, email string, selfID string) error {
	byUsername, err := uc.gateway.FindByUsername(username)
	if err != nil {
		return err
	}
	if byUsername != nil && byUsername.ID != selfID {
		return ErrExistentUsername
	}

	byEmail, err := uc.gateway.FindByEmail(email)
	if err != nil {
		return err
	}
	if byEmail != nil && byEmail.ID != selfID {
		return ErrExistentEmail
	}
	return nil
}

// screenPassword checks the password against the breach corpus. Lookup
// failures never block the operation; a hit blocks only when enforcement
// is on.
func (uc *userUseCase) screenPassword(username string, password string) error {
	if !uc.config.ScreenPasswords || uc.breachGateway == nil {
		return nil
	}

	count, err := uc.breachGateway.CountBreaches(password)
	if err != nil {
		log.Warnf("password breach screening unavailable: %v", err)
		return nil
	}
	if count == 0 {
		return nil
	}

	log.Warn("breached password submitted",
		zap.String("username", username),
		zap.Int("breach_count", count))
	if uc.config.EnforceScreening {
		return ErrBreachedPassword
	}
	return nil
}

// publishEvent sends a lifecycle event to the user events queue, best effort
func (uc *userUseCase) publishEvent(eventType model.UserEventType, user *entity.User) {
	if uc.queueSender == nil || uc.config.EventQueueName == "" {
		return
	}

	event := model.UserEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		UserID:     user.ID,
		Username:   user.Username,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := uc.queueSender.SendMessage(context.Background(), uc.config.EventQueueName, event); err != nil {
		log.Errorf("failed to publish %s event for user %s: %v", eventType, user.ID, err)
	}
}

func (uc *userUseCase) evictFromCache(id string) {
	if err := uc.cacheGateway.EvictUser(context.Background(), id); err != nil {
		log.Warnf("failed to evict user %s from cache: %v", id, err)
	}
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
