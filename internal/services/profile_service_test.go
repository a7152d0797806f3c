package services

import (
	"github.com/yukikurage/labourlink-api/internal/models"
)

func (suite *ServiceTestSuite) TestGetProfile_New() {
	worker := suite.createUser("w1", models.RoleWorker)

	profile, isNew, err := suite.profileService.GetProfile(suite.ctx, NewActor(worker))
	suite.Require().NoError(err)
	suite.True(isNew)
	suite.Equal(worker.ID, profile.UserID)
	suite.Equal(models.RoleWorker, profile.Role)
	suite.NotNil(profile.Skills)
	suite.Empty(profile.Skills)
}

func (suite *ServiceTestSuite) TestUpdateProfile_Worker() {
	worker := suite.createUser("w1", models.RoleWorker)

	profile, err := suite.profileService.UpdateProfile(suite.ctx, NewActor(worker), UpdateProfileInput{
		Skills:             []string{"masonry, tiling", " ", "plastering"},
		ExperienceYears:    3,
		PreferredLocations: []string{"Pune"},
		Bio:                " Reliable ",
		CompanyName:        "ignored",
	})
	suite.Require().NoError(err)
	suite.Equal([]string{"masonry", "tiling", "plastering"}, []string(profile.Skills))
	suite.Equal(3, profile.ExperienceYears)
	suite.Equal("Reliable", profile.Bio)
	suite.Empty(profile.CompanyName)

	again, isNew, err := suite.profileService.GetProfile(suite.ctx, NewActor(worker))
	suite.Require().NoError(err)
	suite.False(isNew)
	suite.Equal(profile.ID, again.ID)

	_, err = suite.profileService.UpdateProfile(suite.ctx, NewActor(worker), UpdateProfileInput{ExperienceYears: -1})
	suite.ErrorIs(err, ErrNegativeExperience)
}

func (suite *ServiceTestSuite) TestUpdateProfile_RecruiterClearsWorkerFields() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)

	profile, err := suite.profileService.UpdateProfile(suite.ctx, NewActor(recruiter), UpdateProfileInput{
		Skills:          []string{"hiring"},
		ExperienceYears: 10,
		CompanyName:     "BuildCo",
		CompanyType:     "construction",
		Website:         "https://buildco.example",
	})
	suite.Require().NoError(err)
	suite.Equal("BuildCo", profile.CompanyName)
	suite.Equal("construction", profile.CompanyType)
	suite.Empty(profile.Skills)
	suite.Zero(profile.ExperienceYears)
}
