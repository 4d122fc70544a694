package validation

import (
	"farm2market_back_end/internal/models"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New renvoie un validateur configuré avec les règles métier de la marketplace.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// tag `role` : seuls farmer et buyer existent
	v.RegisterValidation("role", func(fl validatorv10.FieldLevel) bool {
		role := fl.Field().String()
		return role == models.RoleFarmer || role == models.RoleBuyer
	})

	// un patch de profil entièrement vide est une erreur, pas un no-op
	v.RegisterStructValidation(profileStructValidation, ProfileRequest{})

	return v
}

func profileStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(ProfileRequest)
	if req.Name == nil && req.Email == nil && req.Address == nil && req.Phone == nil {
		sl.ReportError(req, "ProfileRequest", "ProfileRequest", "at_least_one_field", "aucun champ à mettre à jour")
	}
}
