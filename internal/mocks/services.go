package mocks

import (
	"context"
	"encoding/json"

	"github.com/site-content-api/internal/mailer"
	"github.com/site-content-api/internal/models"
	"github.com/site-content-api/internal/repository"
	"github.com/site-content-api/internal/service"
)

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	QueryFunc func(ctx context.Context, req *models.ContentRequest) (interface{}, error)
	Requests  []*models.ContentRequest
}

// Verify interface compliance
var _ service.ContentService = (*MockContentService)(nil)

func NewMockContentService() *MockContentService {
	return &MockContentService{Requests: make([]*models.ContentRequest, 0)}
}

func (m *MockContentService) Query(ctx context.Context, req *models.ContentRequest) (interface{}, error) {
	m.Requests = append(m.Requests, req)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, req)
	}
	return nil, nil
}

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	SubmitFunc  func(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
	Submissions []*models.ContactRequest
}

// Verify interface compliance
var _ service.ContactService = (*MockContactService)(nil)

func NewMockContactService() *MockContactService {
	return &MockContactService{Submissions: make([]*models.ContactRequest, 0)}
}

func (m *MockContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	m.Submissions = append(m.Submissions, req)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	return &models.ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		Data:    models.ContactResultData{ID: "test-submission-id"},
	}, nil
}

// MockColorService is a mock implementation of ColorService
type MockColorService struct {
	ExtractFunc func(ctx context.Context, imageURL string) *models.ColorResult
}

// Verify interface compliance
var _ service.ColorService = (*MockColorService)(nil)

func NewMockColorService() *MockColorService {
	return &MockColorService{}
}

func (m *MockColorService) Extract(ctx context.Context, imageURL string) *models.ColorResult {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, imageURL)
	}
	return &models.ColorResult{Color: "rgb(0,0,0)", Success: true}
}

// MockFetcher is a mock CMS fetcher
type MockFetcher struct {
	FetchFunc func(ctx context.Context, query string, params map[string]string) (json.RawMessage, error)
	Queries   []string
	Params    []map[string]string
}

// Verify interface compliance
var _ service.Fetcher = (*MockFetcher)(nil)

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{Queries: make([]string, 0), Params: make([]map[string]string, 0)}
}

func (m *MockFetcher) Fetch(ctx context.Context, query string, params map[string]string) (json.RawMessage, error) {
	m.Queries = append(m.Queries, query)
	m.Params = append(m.Params, params)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, query, params)
	}
	return json.RawMessage("null"), nil
}

// MockSubmissionRepo is an in-memory submission repository
type MockSubmissionRepo struct {
	CreateFunc  func(ctx context.Context, sub *models.ContactSubmission) error
	Submissions map[string]*models.ContactSubmission
	EmailIDs    map[string]string
}

// Verify interface compliance
var _ repository.SubmissionRepository = (*MockSubmissionRepo)(nil)

func NewMockSubmissionRepo() *MockSubmissionRepo {
	return &MockSubmissionRepo{
		Submissions: make(map[string]*models.ContactSubmission),
		EmailIDs:    make(map[string]string),
	}
}

func (m *MockSubmissionRepo) Create(ctx context.Context, sub *models.ContactSubmission) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	m.Submissions[sub.ID] = sub
	return nil
}

func (m *MockSubmissionRepo) SetEmailID(ctx context.Context, id, emailID string) error {
	m.EmailIDs[id] = emailID
	if sub, ok := m.Submissions[id]; ok {
		sub.EmailID = emailID
	}
	return nil
}

func (m *MockSubmissionRepo) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	return m.Submissions[id], nil
}

func (m *MockSubmissionRepo) Count(ctx context.Context) (int, error) {
	return len(m.Submissions), nil
}

// MockMailer is a mock transactional email sender
type MockMailer struct {
	SendFunc func(ctx context.Context, email *mailer.Email) (string, error)
	Sent     []*mailer.Email
}

// Verify interface compliance
var _ mailer.Mailer = (*MockMailer)(nil)

func NewMockMailer() *MockMailer {
	return &MockMailer{Sent: make([]*mailer.Email, 0)}
}

func (m *MockMailer) Send(ctx context.Context, email *mailer.Email) (string, error) {
	m.Sent = append(m.Sent, email)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email)
	}
	return "mock-email-id", nil
}
