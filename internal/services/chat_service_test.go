package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/constants"
	"github.com/yukikurage/labourlink-api/internal/models"
)

func (suite *ServiceTestSuite) TestPostMessage_ParticipantsOnly() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)
	worker := suite.createUser("w1", models.RoleWorker)
	outsider := suite.createUser("w2", models.RoleWorker)
	job := suite.createJob(recruiter, "Mason", models.JobStatusOpen)
	app := suite.createApplication(worker, job, models.ApplicationStatusApplied)

	msg, err := suite.chatService.PostMessage(suite.ctx, NewActor(worker), app.ID, "  Hi  ")
	suite.Require().NoError(err)
	suite.Equal("Hi", msg.Message)
	suite.Equal(worker.ID, msg.SenderID)
	suite.Equal("w1", msg.Sender.Name)
	suite.Equal(models.RoleWorker, msg.Sender.Role)

	_, err = suite.chatService.PostMessage(suite.ctx, NewActor(recruiter), app.ID, "Hello")
	suite.Require().NoError(err)

	_, err = suite.chatService.PostMessage(suite.ctx, NewActor(outsider), app.ID, "Let me in")
	suite.ErrorIs(err, ErrNotConversationMember)

	_, _, err = suite.chatService.ListMessages(suite.ctx, NewActor(outsider), app.ID)
	suite.ErrorIs(err, ErrNotConversationMember)
}

func (suite *ServiceTestSuite) TestPostMessage_Validation() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)
	worker := suite.createUser("w1", models.RoleWorker)
	job := suite.createJob(recruiter, "Mason", models.JobStatusOpen)
	app := suite.createApplication(worker, job, models.ApplicationStatusApplied)

	_, err := suite.chatService.PostMessage(suite.ctx, NewActor(worker), app.ID, " \n\t ")
	suite.ErrorIs(err, ErrMessageRequired)

	_, err = suite.chatService.PostMessage(suite.ctx, NewActor(worker), app.ID, strings.Repeat("a", constants.MaxMessageLength+1))
	suite.ErrorIs(err, ErrMessageTooLong)

	_, err = suite.chatService.PostMessage(suite.ctx, NewActor(worker), uuid.New(), "Hi")
	suite.ErrorIs(err, ErrChatApplicationNotFound)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.ChatMessage{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *ServiceTestSuite) TestListMessages_Ascending() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)
	worker := suite.createUser("w1", models.RoleWorker)
	job := suite.createJob(recruiter, "Mason", models.JobStatusOpen)
	app := suite.createApplication(worker, job, models.ApplicationStatusApplied)

	base := time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.db.Create(&models.ChatMessage{ApplicationID: app.ID, SenderID: recruiter.ID, Message: "second", CreatedAt: base.Add(2 * time.Minute)}).Error)
	suite.Require().NoError(suite.db.Create(&models.ChatMessage{ApplicationID: app.ID, SenderID: worker.ID, Message: "first", CreatedAt: base.Add(time.Minute)}).Error)

	gotApp, messages, err := suite.chatService.ListMessages(suite.ctx, NewActor(recruiter), app.ID)
	suite.Require().NoError(err)
	suite.Equal(app.ID, gotApp.ID)
	suite.Equal("Mason", gotApp.Job.Title)
	suite.Equal("w1", gotApp.Worker.Name)
	suite.Equal("r1", gotApp.Recruiter.Name)

	suite.Require().Len(messages, 2)
	suite.Equal("first", messages[0].Message)
	suite.Equal("w1", messages[0].Sender.Name)
	suite.Equal("second", messages[1].Message)
	suite.Equal(models.RoleRecruiter, messages[1].Sender.Role)
}

func (suite *ServiceTestSuite) TestListConversations() {
	recruiter := suite.createUser("r1", models.RoleRecruiter)
	worker := suite.createUser("w1", models.RoleWorker)
	otherWorker := suite.createUser("w2", models.RoleWorker)
	job := suite.createJob(recruiter, "Mason", models.JobStatusOpen)
	talked := suite.createApplication(worker, job, models.ApplicationStatusApplied)
	quiet := suite.createApplication(otherWorker, job, models.ApplicationStatusApplied)

	base := time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.db.Create(&models.ChatMessage{ApplicationID: talked.ID, SenderID: worker.ID, Message: "older", CreatedAt: base}).Error)
	suite.Require().NoError(suite.db.Create(&models.ChatMessage{ApplicationID: talked.ID, SenderID: recruiter.ID, Message: "latest", CreatedAt: base.Add(time.Minute)}).Error)

	conversations, err := suite.chatService.ListConversations(suite.ctx, NewActor(recruiter))
	suite.Require().NoError(err)
	suite.Require().Len(conversations, 2)

	byID := map[uuid.UUID]Conversation{}
	for _, conversation := range conversations {
		byID[conversation.Application.ID] = conversation
	}
	suite.Require().NotNil(byID[talked.ID].LastMessage)
	suite.Equal("latest", byID[talked.ID].LastMessage.Message)
	suite.Equal("r1", byID[talked.ID].LastMessage.Sender.Name)
	suite.Nil(byID[quiet.ID].LastMessage)

	workerConversations, err := suite.chatService.ListConversations(suite.ctx, NewActor(worker))
	suite.Require().NoError(err)
	suite.Require().Len(workerConversations, 1)
	suite.Equal(talked.ID, workerConversations[0].Application.ID)

	empty, err := suite.chatService.ListConversations(suite.ctx, NewActor(suite.createUser("w3", models.RoleWorker)))
	suite.Require().NoError(err)
	suite.Empty(empty)
}
