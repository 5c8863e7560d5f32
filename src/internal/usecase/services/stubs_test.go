package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/gateway"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type intentCreatorStub struct {
	createFn    func(ctx context.Context, req gateway.IntentRequest) (gateway.Intent, error)
	cancelFn    func(ctx context.Context, intentID string) error
	createCalls int
	cancelCalls int
}

func (s *intentCreatorStub) CreateIntent(ctx context.Context, req gateway.IntentRequest) (gateway.Intent, error) {
	s.createCalls++
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return gateway.Intent{}, nil
}

func (s *intentCreatorStub) CancelIntent(ctx context.Context, intentID string) error {
	s.cancelCalls++
	if s.cancelFn != nil {
		return s.cancelFn(ctx, intentID)
	}
	return nil
}

type eventVerifierStub struct {
	verifyFn func(payload []byte, signatureHeader string) (gateway.Event, error)
}

func (s eventVerifierStub) VerifyEvent(payload []byte, signatureHeader string) (gateway.Event, error) {
	if s.verifyFn != nil {
		return s.verifyFn(payload, signatureHeader)
	}
	return gateway.Event{}, nil
}

// ledgerStub keeps transactions in memory keyed by reference and applies the
// same pending-only transition rule as the SQL repository.
type ledgerStub struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]domain.Transaction

	createErr error
	getErr    error
	updateErr error
	listErr   error
}

func newLedgerStub() *ledgerStub {
	return &ledgerStub{rows: map[string]domain.Transaction{}}
}

func (l *ledgerStub) Create(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.createErr != nil {
		return domain.Transaction{}, l.createErr
	}
	if _, exists := l.rows[tx.Reference]; exists {
		return domain.Transaction{}, commons.ErrDuplicate
	}
	l.nextID++
	tx.ID = l.nextID
	tx.CreatedAt = time.Now().UTC()
	l.rows[tx.Reference] = tx
	return tx, nil
}

func (l *ledgerStub) GetByReference(_ context.Context, reference string) (domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.getErr != nil {
		return domain.Transaction{}, l.getErr
	}
	tx, ok := l.rows[reference]
	if !ok {
		return domain.Transaction{}, commons.ErrRecordNotFound
	}
	return tx, nil
}

func (l *ledgerStub) UpdateStatusIfPending(_ context.Context, reference string, status domain.TransactionStatus) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.updateErr != nil {
		return false, l.updateErr
	}
	tx, ok := l.rows[reference]
	if !ok || tx.Status != domain.TransactionStatusPending {
		return false, nil
	}
	tx.Status = status
	l.rows[reference] = tx
	return true, nil
}

func (l *ledgerStub) ListByUserID(_ context.Context, userID int64) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listErr != nil {
		return nil, l.listErr
	}
	var out []domain.Transaction
	for _, tx := range l.rows {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (l *ledgerStub) snapshot() map[string]domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]domain.Transaction, len(l.rows))
	for k, v := range l.rows {
		out[k] = v
	}
	return out
}

type userRepoStub struct {
	createWithProfileFn func(ctx context.Context, user domain.User, profile domain.Profile) (domain.User, domain.Profile, error)
	getByUsernameFn     func(ctx context.Context, username string) (domain.User, error)
}

func (s userRepoStub) CreateWithProfile(ctx context.Context, user domain.User, profile domain.Profile) (domain.User, domain.Profile, error) {
	if s.createWithProfileFn != nil {
		return s.createWithProfileFn(ctx, user, profile)
	}
	return user, profile, nil
}

func (s userRepoStub) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return domain.User{}, commons.ErrRecordNotFound
}

type profileRepoStub struct {
	getByUserIDFn   func(ctx context.Context, userID int64) (domain.Profile, error)
	updateFn        func(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	savePushTokenFn func(ctx context.Context, userID int64, token string) error
	providerFn      func(ctx context.Context, userID int64, isServiceProvider, isApprovedProvider *bool) (domain.Profile, error)
}

func (s profileRepoStub) GetByUserID(ctx context.Context, userID int64) (domain.Profile, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return domain.Profile{}, commons.ErrRecordNotFound
}

func (s profileRepoStub) Update(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, profile)
	}
	return profile, nil
}

func (s profileRepoStub) SavePushToken(ctx context.Context, userID int64, token string) error {
	if s.savePushTokenFn != nil {
		return s.savePushTokenFn(ctx, userID, token)
	}
	return nil
}

func (s profileRepoStub) UpdateProviderStatus(ctx context.Context, userID int64, isServiceProvider, isApprovedProvider *bool) (domain.Profile, error) {
	if s.providerFn != nil {
		return s.providerFn(ctx, userID, isServiceProvider, isApprovedProvider)
	}
	return domain.Profile{}, commons.ErrRecordNotFound
}

type serviceRepoStub struct {
	createFn  func(ctx context.Context, service domain.Service) (domain.Service, error)
	getByIDFn func(ctx context.Context, id int64) (domain.Service, error)
	listFn    func(ctx context.Context) ([]domain.Service, error)
}

func (s serviceRepoStub) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	if s.createFn != nil {
		return s.createFn(ctx, service)
	}
	return service, nil
}

func (s serviceRepoStub) GetByID(ctx context.Context, id int64) (domain.Service, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Service{}, commons.ErrRecordNotFound
}

func (s serviceRepoStub) List(ctx context.Context) ([]domain.Service, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type categoryRepoStub struct {
	createFn  func(ctx context.Context, category domain.ProductCategory) (domain.ProductCategory, error)
	getByIDFn func(ctx context.Context, id int64) (domain.ProductCategory, error)
}

func (s categoryRepoStub) Create(ctx context.Context, category domain.ProductCategory) (domain.ProductCategory, error) {
	if s.createFn != nil {
		return s.createFn(ctx, category)
	}
	return category, nil
}

func (s categoryRepoStub) GetByID(ctx context.Context, id int64) (domain.ProductCategory, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.ProductCategory{}, commons.ErrRecordNotFound
}

type productRepoStub struct {
	createFn  func(ctx context.Context, product domain.Product) (domain.Product, error)
	getByIDFn func(ctx context.Context, id int64) (domain.Product, error)
	listFn    func(ctx context.Context, categoryID *int64) ([]domain.Product, error)
}

func (s productRepoStub) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if s.createFn != nil {
		return s.createFn(ctx, product)
	}
	return product, nil
}

func (s productRepoStub) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Product{}, commons.ErrRecordNotFound
}

func (s productRepoStub) List(ctx context.Context, categoryID *int64) ([]domain.Product, error) {
	if s.listFn != nil {
		return s.listFn(ctx, categoryID)
	}
	return nil, nil
}

type reviewRepoStub struct {
	createFn func(ctx context.Context, review domain.ProductReview) (domain.ProductReview, error)
	listFn   func(ctx context.Context, productID int64) ([]domain.ProductReview, error)
}

func (s reviewRepoStub) Create(ctx context.Context, review domain.ProductReview) (domain.ProductReview, error) {
	if s.createFn != nil {
		return s.createFn(ctx, review)
	}
	return review, nil
}

func (s reviewRepoStub) ListByProductID(ctx context.Context, productID int64) ([]domain.ProductReview, error) {
	if s.listFn != nil {
		return s.listFn(ctx, productID)
	}
	return nil, nil
}

type orderRepoStub struct {
	createFn       func(ctx context.Context, order domain.Order) (domain.Order, error)
	getByIDFn      func(ctx context.Context, id int64) (domain.Order, error)
	listFn         func(ctx context.Context, userID int64) ([]domain.Order, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error)
	createCalls    *int
}

func (s orderRepoStub) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if s.createCalls != nil {
		*s.createCalls++
	}
	if s.createFn != nil {
		return s.createFn(ctx, order)
	}
	return order, nil
}

func (s orderRepoStub) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Order{}, commons.ErrRecordNotFound
}

func (s orderRepoStub) ListByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}

func (s orderRepoStub) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error) {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return domain.Order{}, commons.ErrRecordNotFound
}

type feedbackRepoStub struct {
	createFn func(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
}

func (s feedbackRepoStub) Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	if s.createFn != nil {
		return s.createFn(ctx, feedback)
	}
	return feedback, nil
}

type supportRepoStub struct {
	createFn  func(ctx context.Context, message domain.SupportMessage) (domain.SupportMessage, error)
	getByIDFn func(ctx context.Context, id int64) (domain.SupportMessage, error)
	listFn    func(ctx context.Context, userID int64) ([]domain.SupportMessage, error)
}

func (s supportRepoStub) Create(ctx context.Context, message domain.SupportMessage) (domain.SupportMessage, error) {
	if s.createFn != nil {
		return s.createFn(ctx, message)
	}
	return message, nil
}

func (s supportRepoStub) GetByID(ctx context.Context, id int64) (domain.SupportMessage, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.SupportMessage{}, commons.ErrRecordNotFound
}

func (s supportRepoStub) ListByUserID(ctx context.Context, userID int64) ([]domain.SupportMessage, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}
