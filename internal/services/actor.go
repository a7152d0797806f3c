package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/models"
)

var (
	ErrWorkerRoleRequired    = errors.New("This action is only available to workers.")
	ErrRecruiterRoleRequired = errors.New("This action is only available to recruiters.")
	errNotANumber            = errors.New("not a number")
)

// Actor is the identity a request was authenticated as. It is rebuilt from the
// user record on every request and never cached between requests.
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
	Name   string
}

// NewActor builds an Actor from a loaded user.
func NewActor(user *models.User) Actor {
	return Actor{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
	}
}

func (a Actor) IsWorker() bool {
	return a.Role == models.RoleWorker
}

func (a Actor) IsRecruiter() bool {
	return a.Role == models.RoleRecruiter
}

func (a Actor) requireWorker() error {
	if !a.IsWorker() {
		return ErrWorkerRoleRequired
	}
	return nil
}

func (a Actor) requireRecruiter() error {
	if !a.IsRecruiter() {
		return ErrRecruiterRoleRequired
	}
	return nil
}

// parseNumber accepts the text of a JSON number or numeric string.
func parseNumber(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errNotANumber
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errNotANumber
	}
	return n, nil
}
