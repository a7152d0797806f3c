package services

import (
	"github.com/yukikurage/labourlink-api/internal/models"
)

func (suite *ServiceTestSuite) validRegistration() RegisterInput {
	return RegisterInput{
		Name:     "Asha",
		Email:    "  Asha@Example.COM ",
		Phone:    "9000000000",
		Password: "secret123",
		Role:     "worker",
	}
}

func (suite *ServiceTestSuite) TestRegister_Success() {
	user, token, err := suite.authService.Register(suite.ctx, suite.validRegistration())
	suite.Require().NoError(err)
	suite.Equal("asha@example.com", user.Email)
	suite.Equal(models.RoleWorker, user.Role)
	suite.NotEqual("secret123", user.PasswordHash)
	suite.NotEmpty(token)

	userID, err := suite.authService.UserIDFromToken(token)
	suite.Require().NoError(err)
	suite.Equal(user.ID, userID)
}

func (suite *ServiceTestSuite) TestRegister_Validation() {
	missing := suite.validRegistration()
	missing.Phone = ""
	_, _, err := suite.authService.Register(suite.ctx, missing)
	suite.ErrorIs(err, ErrMissingRegistrationFields)

	badRole := suite.validRegistration()
	badRole.Role = "admin"
	_, _, err = suite.authService.Register(suite.ctx, badRole)
	suite.ErrorIs(err, ErrInvalidRole)

	short := suite.validRegistration()
	short.Password = "123"
	_, _, err = suite.authService.Register(suite.ctx, short)
	suite.ErrorIs(err, ErrPasswordTooShort)

	_, _, err = suite.authService.Register(suite.ctx, suite.validRegistration())
	suite.Require().NoError(err)

	duplicate := suite.validRegistration()
	duplicate.Email = "asha@example.com"
	_, _, err = suite.authService.Register(suite.ctx, duplicate)
	suite.ErrorIs(err, ErrEmailTaken)
}

func (suite *ServiceTestSuite) TestLogin() {
	registered, _, err := suite.authService.Register(suite.ctx, suite.validRegistration())
	suite.Require().NoError(err)

	user, token, err := suite.authService.Login(suite.ctx, LoginInput{Email: "ASHA@example.com", Password: "secret123"})
	suite.Require().NoError(err)
	suite.Equal(registered.ID, user.ID)
	suite.NotEmpty(token)

	_, _, err = suite.authService.Login(suite.ctx, LoginInput{Email: "asha@example.com", Password: "wrong-password"})
	suite.ErrorIs(err, ErrInvalidCredentials)

	_, _, err = suite.authService.Login(suite.ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
	suite.ErrorIs(err, ErrInvalidCredentials)

	_, _, err = suite.authService.Login(suite.ctx, LoginInput{Email: "", Password: ""})
	suite.ErrorIs(err, ErrMissingCredentials)

	found, err := suite.authService.GetUser(suite.ctx, registered.ID)
	suite.Require().NoError(err)
	suite.Equal("Asha", found.Name)
}
