package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/domain/repositories"
)

// BorrowerIDKey is the gin context key for the borrower profile id.
const BorrowerIDKey = "borrower_id"

// ActivatePath is where a user without a borrower profile is pointed.
const ActivatePath = "/api/v1/borrowers/activate"

// RequireBorrower blocks users who have not activated a borrower
// profile. The 403 carries a redirect hint so clients can send the
// user to the activation flow.
func RequireBorrower(borrowerRepo repositories.BorrowerProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		profile, err := borrowerRepo.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":    domainerrors.ErrBorrowerRequired.Error(),
					"redirect": ActivatePath,
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(BorrowerIDKey, profile.ID)
		c.Next()
	}
}

// GetBorrowerID gets the borrower profile id from context.
func GetBorrowerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(BorrowerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
