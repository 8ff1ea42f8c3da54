package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
	"github.com/been-going/PleaseCheckYourDays/internal/validation"
)

// ErrBadCredentials is returned when a password check fails. The message is
// deliberately the same whether the account exists or not.
var ErrBadCredentials = errors.New("email or password is incorrect")

// CreateUser registers a local account with a bcrypt-hashed password.
func (t *Tracker) CreateUser(email, password string) (models.User, error) {
	if err := validation.Email(email); err != nil {
		return models.User{}, err
	}
	if err := validation.Password(password); err != nil {
		return models.User{}, err
	}

	if _, err := t.store.GetUserByEmail(email); err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", email)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    t.clock.Now(),
	}
	if err := t.store.AddUser(user); err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// VerifyUser checks an email/password pair and returns the account.
func (t *Tracker) VerifyUser(email, password string) (models.User, error) {
	user, err := t.store.GetUserByEmail(email)
	if errors.Is(err, storage.ErrNotFound) {
		return models.User{}, ErrBadCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrBadCredentials
	}
	return user, nil
}

// ResolveUser looks up the acting account by email.
func (t *Tracker) ResolveUser(email string) (models.User, error) {
	return t.store.GetUserByEmail(email)
}

// AddFixedCost records a recurring monthly expense.
func (t *Tracker) AddFixedCost(userID, name string, amount float64, paymentDay int) (models.FixedCost, error) {
	if err := validation.Title(name); err != nil {
		return models.FixedCost{}, err
	}
	if err := validation.PaymentDay(paymentDay); err != nil {
		return models.FixedCost{}, err
	}
	if amount < 0 {
		return models.FixedCost{}, fmt.Errorf("%w: amount must not be negative", validation.ErrInvalid)
	}

	now := t.clock.Now()
	cost := models.FixedCost{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		PaymentDay: paymentDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.store.AddFixedCost(cost); err != nil {
		return models.FixedCost{}, fmt.Errorf("failed to add fixed cost: %w", err)
	}
	return cost, nil
}

func (t *Tracker) ListFixedCosts(userID string) ([]models.FixedCost, error) {
	return t.store.GetFixedCosts(userID)
}

func (t *Tracker) DeleteFixedCost(userID, id string) error {
	return t.store.DeleteFixedCost(id, userID)
}
