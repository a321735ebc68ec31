package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/greenhub/backend/internal/domain/shared"
	vendordomain "github.com/greenhub/backend/internal/domain/vendor"
	"github.com/greenhub/backend/internal/interfaces/http/middleware"

	vendorapp "github.com/greenhub/backend/internal/application/vendor"
)

// vendorResolver maps an authenticated account to its vendor profile.
// Vendor-scoped routes require the profile to exist and be APPROVED;
// anything else is a 403, not a 404, so probing cannot distinguish
// "no profile" from "suspended".
type vendorResolver struct {
	BaseHandler
	lifecycle *vendorapp.LifecycleService
}

func (r *vendorResolver) resolveApproved(c *gin.Context) (*vendorapp.VendorResponse, bool) {
	email := middleware.GetJWTEmail(c)
	if email == "" {
		r.Forbidden(c, "No vendor profile linked to this account")
		return nil, false
	}

	v, err := r.lifecycle.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			r.Forbidden(c, "No vendor profile linked to this account")
			return nil, false
		}
		r.HandleError(c, err)
		return nil, false
	}

	if v.Status != string(vendordomain.StatusApproved) {
		r.Forbidden(c, "Vendor account is not approved")
		return nil, false
	}

	return v, true
}
