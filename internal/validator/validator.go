package validator

import (
	"regexp"

	"enso/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugRegex matches valid slugs: lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug validates that a string is a valid slug
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// validateTeamRole accepts the roles that can be granted by invitation or role
// update. Ownership moves only through the transfer endpoint, so "owner" is
// rejected here.
func validateTeamRole(fl validator.FieldLevel) bool {
	switch models.Role(fl.Field().String()) {
	case models.RoleAdmin, models.RoleMember, models.RoleViewer:
		return true
	}
	return false
}

// validateVisibility accepts the known project visibility values.
func validateVisibility(fl validator.FieldLevel) bool {
	return models.Visibility(fl.Field().String()).Valid()
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", validateSlug)
		_ = v.RegisterValidation("teamrole", validateTeamRole)
		_ = v.RegisterValidation("visibility", validateVisibility)
	}
}
