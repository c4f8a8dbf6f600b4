package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
)

type borrowerRepoStub struct {
	profile *entities.BorrowerProfile
}

func (s *borrowerRepoStub) Create(context.Context, *entities.BorrowerProfile) error { return nil }
func (s *borrowerRepoStub) GetByID(context.Context, uuid.UUID) (*entities.BorrowerProfile, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *borrowerRepoStub) GetByUserID(context.Context, uuid.UUID) (*entities.BorrowerProfile, error) {
	if s.profile == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.profile, nil
}
func (s *borrowerRepoStub) PhoneNumberExists(context.Context, string) (bool, error) {
	return false, nil
}

func borrowerRouter(stub *borrowerRepoStub, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(UserIDKey, userID) })
	r.Use(RequireBorrower(stub))
	r.GET("/guarded", func(c *gin.Context) {
		id, _ := GetBorrowerID(c)
		c.JSON(http.StatusOK, gin.H{"borrowerId": id})
	})
	return r
}

func TestRequireBorrowerWithoutProfile(t *testing.T) {
	r := borrowerRouter(&borrowerRepoStub{}, uuid.New())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), ActivatePath)
}

func TestRequireBorrowerWithProfile(t *testing.T) {
	userID := uuid.New()
	profile := &entities.BorrowerProfile{ID: uuid.New(), UserID: userID}
	r := borrowerRouter(&borrowerRepoStub{profile: profile}, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), profile.ID.String())
}

func TestRequireBorrowerUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireBorrower(&borrowerRepoStub{}))
	r.GET("/guarded", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
