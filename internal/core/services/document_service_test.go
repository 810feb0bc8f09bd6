package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/services"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockProjectRepo  *MockProjectRepository
	mockOrgRepo      *MockOrganizationRepository
	mockStore        *MockObjectStore
	service          portssvc.DocumentSvcFacade

	userID  string
	profile *domain.Profile
	project *domain.Project
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockStore = new(MockObjectStore)

	authorizer := services.NewAuthorizerService(suite.mockOrgRepo)
	suite.service = services.NewDocumentService(suite.mockDocumentRepo, suite.mockProjectRepo, suite.mockStore, authorizer)

	suite.userID = uuid.NewString()
	suite.profile = &domain.Profile{
		ProfileID:      uuid.NewString(),
		UserID:         suite.userID,
		OrganizationID: uuid.NewString(),
		Role:           domain.RoleDesigner,
	}
	suite.mockOrgRepo.FindProfileByUserIDFn = func(ctx context.Context, userID string) (*domain.Profile, error) {
		return suite.profile, nil
	}

	suite.project = &domain.Project{
		ProjectID:      uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		Name:           "Lakeside Annex",
	}
	suite.mockProjectRepo.FindProjectByIDFn = func(ctx context.Context, projectID string) (*domain.Project, error) {
		return suite.project, nil
	}
}

func (suite *DocumentServiceTestSuite) TestUploadDocument_StoresObjectAndRow() {
	ctx := context.Background()

	content := []byte("%PDF-1.7 fake drawing")
	var uploadedKey string
	suite.mockStore.On("Upload", ctx, mock.AnythingOfType("string"), "application/pdf", content).
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).
		Return(nil).Once()
	suite.mockDocumentRepo.On("SaveDocument", ctx, mock.AnythingOfType("domain.Document")).
		Return(nil).Once()

	upload := portssvc.DocumentUpload{
		ProjectID:   suite.project.ProjectID,
		Kind:        domain.KindDrawing,
		FileName:    "site-plan.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Body:        bytes.NewReader(content),
	}

	document, err := suite.service.UploadDocument(ctx, suite.userID, upload)

	suite.Require().NoError(err)
	suite.Require().NotNil(document)
	suite.Equal(domain.KindDrawing, document.Kind)
	suite.Equal(suite.project.OrganizationID, document.OrganizationID)
	suite.Equal(suite.profile.ProfileID, document.UploadedBy)
	suite.Equal(uploadedKey, document.FileKey)
	suite.Equal(int64(len(content)), document.FileSize)
	suite.mockStore.AssertExpectations(suite.T())
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

// A failed metadata insert removes the object that was just uploaded.
func (suite *DocumentServiceTestSuite) TestUploadDocument_FailedInsertCleansUpObject() {
	ctx := context.Background()

	content := []byte("receipt")
	suite.mockStore.On("Upload", ctx, mock.AnythingOfType("string"), "image/png", content).
		Return(nil).Once()
	suite.mockDocumentRepo.On("SaveDocument", ctx, mock.AnythingOfType("domain.Document")).
		Return(apperrors.NewInternalServerError("insert failed")).Once()
	suite.mockStore.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	upload := portssvc.DocumentUpload{
		ProjectID:   suite.project.ProjectID,
		Kind:        domain.KindReceipt,
		FileName:    "receipt.png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Body:        bytes.NewReader(content),
	}

	document, err := suite.service.UploadDocument(ctx, suite.userID, upload)

	suite.Require().Error(err)
	suite.Nil(document)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestUploadDocument_MissingFileNameRejected() {
	ctx := context.Background()

	upload := portssvc.DocumentUpload{
		ProjectID:   suite.project.ProjectID,
		Kind:        domain.KindDocument,
		ContentType: "application/pdf",
		Body:        bytes.NewReader(nil),
	}

	document, err := suite.service.UploadDocument(ctx, suite.userID, upload)

	suite.Require().Error(err)
	suite.Nil(document)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStore.AssertNotCalled(suite.T(), "Upload")
}

func (suite *DocumentServiceTestSuite) TestGetDownloadURL_Presigns() {
	ctx := context.Background()

	document := &domain.Document{
		DocumentID:     uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		FileKey:        "documents/key/site-plan.pdf",
		UploadedBy:     suite.profile.ProfileID,
	}
	suite.mockDocumentRepo.FindDocumentByIDFn = func(ctx context.Context, documentID string) (*domain.Document, error) {
		return document, nil
	}
	suite.mockStore.On("PresignedGetURL", ctx, document.FileKey).
		Return("https://bucket.example/signed", nil).Once()

	url, err := suite.service.GetDownloadURL(ctx, suite.userID, document.DocumentID)

	suite.Require().NoError(err)
	suite.Equal("https://bucket.example/signed", url)
}

// Deleting someone else's document needs a manager role.
func (suite *DocumentServiceTestSuite) TestDeleteDocument_NonUploaderMemberForbidden() {
	ctx := context.Background()

	document := &domain.Document{
		DocumentID:     uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		FileKey:        "documents/key/site-plan.pdf",
		UploadedBy:     uuid.NewString(),
	}
	suite.mockDocumentRepo.FindDocumentByIDFn = func(ctx context.Context, documentID string) (*domain.Document, error) {
		return document, nil
	}

	err := suite.service.DeleteDocument(ctx, suite.userID, document.DocumentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "DeleteDocument")
	suite.mockStore.AssertNotCalled(suite.T(), "Delete")
}

// A document in another organization reads as missing, not forbidden.
func (suite *DocumentServiceTestSuite) TestGetDocumentByID_CrossOrganizationIsNotFound() {
	ctx := context.Background()

	document := &domain.Document{
		DocumentID:     uuid.NewString(),
		OrganizationID: uuid.NewString(),
	}
	suite.mockDocumentRepo.FindDocumentByIDFn = func(ctx context.Context, documentID string) (*domain.Document, error) {
		return document, nil
	}

	got, err := suite.service.GetDocumentByID(ctx, suite.userID, document.DocumentID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
