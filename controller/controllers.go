// controller/controllers.go
package controller

import "github.com/edulock/sebgate/service"

type Controllers struct {
	Validation *ValidationController
	Policy     *PolicyController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Validation: NewValidationController(services.Validator, services.Audit),
		Policy:     NewPolicyController(services.Policy),
	}
}
