package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/models"
)

func (suite *ServiceTestSuite) TestCreateJob_Defaults() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)

	job, err := suite.jobService.CreateJob(suite.ctx, NewActor(recruiter), CreateJobInput{
		Title:       " Mason ",
		Description: "Build a wall",
		Category:    "construction",
		Location:    "Pune",
		Wage:        "750",
	})
	suite.Require().NoError(err)
	suite.Equal("Mason", job.Title)
	suite.Equal(750.0, job.Wage)
	suite.Equal(models.DefaultJobType, job.JobType)
	suite.Equal(models.DefaultExperienceLevel, job.ExperienceLevel)
	suite.Equal(models.JobStatusOpen, job.Status)
	suite.Equal(recruiter.ID, job.RecruiterID)
}

func (suite *ServiceTestSuite) TestCreateJob_Validation() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)
	worker := suite.createUser("w1", models.RoleWorker)
	valid := CreateJobInput{Title: "Mason", Description: "Build", Category: "construction", Location: "Pune", Wage: "100"}

	missing := valid
	missing.Location = "  "
	_, err := suite.jobService.CreateJob(suite.ctx, NewActor(recruiter), missing)
	suite.ErrorIs(err, ErrJobMissingFields)

	noWage := valid
	noWage.Wage = ""
	_, err = suite.jobService.CreateJob(suite.ctx, NewActor(recruiter), noWage)
	suite.ErrorIs(err, ErrJobMissingFields)

	for _, wage := range []string{"-1", "lots", "NaN"} {
		bad := valid
		bad.Wage = wage
		_, err = suite.jobService.CreateJob(suite.ctx, NewActor(recruiter), bad)
		suite.ErrorIs(err, ErrInvalidWage, "wage %q", wage)
	}

	_, err = suite.jobService.CreateJob(suite.ctx, NewActor(worker), valid)
	suite.ErrorIs(err, ErrOnlyRecruitersCanPostJobs)

	free := valid
	free.Wage = "0"
	job, err := suite.jobService.CreateJob(suite.ctx, NewActor(recruiter), free)
	suite.Require().NoError(err)
	suite.Zero(job.Wage)
}

func (suite *ServiceTestSuite) TestListJobs() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)
	otherRecruiter := suite.createUser("r2", models.RoleRecruiter)
	suite.createJob(recruiter, "Mason", models.JobStatusOpen)
	suite.createJob(recruiter, "Plumber", models.JobStatusClosed)
	suite.createJob(otherRecruiter, "Painter", models.JobStatusOpen)

	open, total, err := suite.jobService.ListOpenJobs(suite.ctx, ListJobsInput{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(open, 2)
	for _, job := range open {
		suite.Equal(models.JobStatusOpen, job.Status)
	}

	mine, err := suite.jobService.ListRecruiterJobs(suite.ctx, NewActor(recruiter))
	suite.Require().NoError(err)
	suite.Len(mine, 2)

	_, err = suite.jobService.ListRecruiterJobs(suite.ctx, NewActor(suite.createUser("w1", models.RoleWorker)))
	suite.ErrorIs(err, ErrRecruiterRoleRequired)
}

func (suite *ServiceTestSuite) TestUpdateJobStatus() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)
	otherRecruiter := suite.createUser("r2", models.RoleRecruiter)
	job := suite.createJob(recruiter, "Mason", models.JobStatusOpen)

	_, err := suite.jobService.UpdateJobStatus(suite.ctx, NewActor(recruiter), job.ID, "paused")
	suite.ErrorIs(err, ErrInvalidJobStatus)

	_, err = suite.jobService.UpdateJobStatus(suite.ctx, NewActor(recruiter), uuid.New(), "closed")
	suite.ErrorIs(err, ErrJobNotFound)

	_, err = suite.jobService.UpdateJobStatus(suite.ctx, NewActor(otherRecruiter), job.ID, "closed")
	suite.ErrorIs(err, ErrNotJobOwner)

	updated, err := suite.jobService.UpdateJobStatus(suite.ctx, NewActor(recruiter), job.ID, "closed")
	suite.Require().NoError(err)
	suite.Equal(models.JobStatusClosed, updated.Status)

	stored, err := suite.jobRepo.FindByID(suite.ctx, job.ID)
	suite.Require().NoError(err)
	suite.Equal(models.JobStatusClosed, stored.Status)

	worker := suite.createUser("w1", models.RoleWorker)
	_, err = suite.applicationService.Apply(suite.ctx, NewActor(worker), ApplyInput{JobID: job.ID.String()})
	suite.ErrorIs(err, ErrJobNotOpen)
}

func (suite *ServiceTestSuite) TestDraftJob() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)

	draft, err := suite.jobService.DraftJob(suite.ctx, NewActor(recruiter), "Need a painter in Pune for two days")
	suite.Require().NoError(err)
	suite.Equal("Painter", draft.Title)
	suite.Equal(models.DefaultJobType, draft.JobType)
	suite.Equal(models.DefaultExperienceLevel, draft.ExperienceLevel)

	_, err = suite.jobService.DraftJob(suite.ctx, NewActor(recruiter), "   ")
	suite.ErrorIs(err, ErrDraftTextRequired)
	suite.Equal(1, suite.drafter.calls)

	suite.drafter.err = errors.New("upstream timeout")
	_, err = suite.jobService.DraftJob(suite.ctx, NewActor(recruiter), "Need a painter")
	suite.ErrorIs(err, ErrAIDraftFailed)

	unconfigured := NewJobService(suite.jobRepo, nil)
	_, err = unconfigured.DraftJob(suite.ctx, NewActor(recruiter), "Need a painter")
	suite.ErrorIs(err, ErrAIServiceNotConfigured)
}
