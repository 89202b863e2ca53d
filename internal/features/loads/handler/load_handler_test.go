package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"loadtracker/internal/features/loads/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLoadService is a mock implementation of ports.LoadService
type MockLoadService struct {
	mock.Mock
}

func (m *MockLoadService) Describe(ctx context.Context, loadID string, view domain.View) (*domain.StatusView, error) {
	args := m.Called(ctx, loadID, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusView), args.Error(1)
}

func (m *MockLoadService) Advance(ctx context.Context, loadID string, view domain.View) (*domain.StatusView, error) {
	args := m.Called(ctx, loadID, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusView), args.Error(1)
}

func (m *MockLoadService) ForceAdvance(ctx context.Context, loadID string, confirmed bool) (*domain.StatusView, error) {
	args := m.Called(ctx, loadID, confirmed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusView), args.Error(1)
}

func setupApp(service *MockLoadService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})

	h := NewLoadHandler(service)
	app.Get("/statuses", h.ListStatuses)
	app.Get("/statuses/describe", h.DescribeStatus)
	app.Get("/statuses/next", h.NextAction)
	app.Get("/statuses/progress", h.Progress)
	app.Get("/loads/:id/status", h.GetLoadStatus)
	app.Post("/loads/:id/advance", h.AdvanceLoad)
	app.Post("/loads/:id/force-advance", h.ForceAdvanceLoad)
	return app
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestLoadHandler_ListStatuses(t *testing.T) {
	app := setupApp(new(MockLoadService))

	resp, err := app.Test(httptest.NewRequest("GET", "/statuses", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []StatusEntry
	decode(t, resp, &entries)
	require.Len(t, entries, len(domain.AllStatuses()))
	assert.Equal(t, domain.StatusCreated, entries[0].Status)
	assert.Equal(t, "Created", entries[0].Label)
}

func TestLoadHandler_DescribeStatus(t *testing.T) {
	app := setupApp(new(MockLoadService))

	t.Run("Absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/statuses/describe", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var sv domain.StatusView
		decode(t, resp, &sv)
		assert.Equal(t, "Unknown Status", sv.Label)
		assert.Nil(t, sv.NextAction)
		assert.True(t, sv.Steps[0].Active)
	})

	t.Run("Unrecognized", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/statuses/describe?status=on_hold&view=driver", nil))
		require.NoError(t, err)

		var sv domain.StatusView
		decode(t, resp, &sv)
		assert.Equal(t, "on_hold", sv.Label)
		assert.False(t, sv.Known)
		assert.Equal(t, domain.ViewDriver, sv.View)
	})

	t.Run("BadView", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/statuses/describe?view=accounting", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoadHandler_NextAction(t *testing.T) {
	app := setupApp(new(MockLoadService))

	t.Run("Dispatcher", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/statuses/next?status=at_shipper", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var action domain.Action
		decode(t, resp, &action)
		assert.Equal(t, domain.StatusLeftShipper, action.Target)
		assert.Equal(t, "Left Shipper", action.Label)
	})

	t.Run("Terminal", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/statuses/next?status=completed&view=driver", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp ErrorResponse
		decode(t, resp, &errResp)
		assert.Equal(t, "test-ray-id", errResp.RayID)
	})
}

func TestLoadHandler_Progress(t *testing.T) {
	app := setupApp(new(MockLoadService))

	resp, err := app.Test(httptest.NewRequest("GET", "/statuses/progress?status=left_shipper", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var steps []domain.Step
	decode(t, resp, &steps)
	require.Len(t, steps, 7)
	assert.True(t, steps[3].Active)
	assert.True(t, steps[0].Completed)
	assert.False(t, steps[4].Completed)
}

func TestLoadHandler_GetLoadStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		sv := domain.Describe(domain.ViewDriver, domain.StatusAtShipper)
		svc.On("Describe", mock.Anything, "42", domain.ViewDriver).Return(&sv, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/loads/42/status?view=driver", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		svc.On("Describe", mock.Anything, "404", domain.ViewDispatcher).
			Return(nil, fmt.Errorf("service: failed to get load: %w", domain.ErrLoadNotFound)).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/loads/404/status", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InternalError", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		svc.On("Describe", mock.Anything, "42", domain.ViewDispatcher).Return(nil, errors.New("boom")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/loads/42/status", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var errResp ErrorResponse
		decode(t, resp, &errResp)
		assert.Equal(t, "Internal server error", errResp.Message)
	})
}

func TestLoadHandler_AdvanceLoad(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		sv := domain.Describe(domain.ViewDispatcher, domain.StatusLeftShipper)
		svc.On("Advance", mock.Anything, "42", domain.ViewDispatcher).Return(&sv, nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/loads/42/advance", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("NoNextAction", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		svc.On("Advance", mock.Anything, "42", domain.ViewDriver).Return(nil, domain.ErrNoNextAction).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/loads/42/advance?view=driver", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestLoadHandler_ForceAdvanceLoad(t *testing.T) {
	t.Run("Unconfirmed", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		svc.On("ForceAdvance", mock.Anything, "42", false).Return(nil, domain.ErrConfirmationRequired).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/loads/42/force-advance", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("Confirmed", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		sv := domain.Describe(domain.ViewDispatcher, domain.StatusAtShipper)
		svc.On("ForceAdvance", mock.Anything, "42", true).Return(&sv, nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/loads/42/force-advance?confirm=true", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("NoNextStage", func(t *testing.T) {
		svc := new(MockLoadService)
		app := setupApp(svc)
		svc.On("ForceAdvance", mock.Anything, "42", true).Return(nil, domain.ErrNoNextStage).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/loads/42/force-advance?confirm=true", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}
