package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sipwell/reminder-scheduling/internal/domain"
)

func TestHandleLogDrink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	repo := domain.NewMockSettingsRepository(ctrl)
	stored := &domain.ReminderSettings{
		Window:          domain.NewWindow(7, 21),
		IntervalMinutes: 60,
		DailyGoalML:     2000,
	}
	repo.EXPECT().GetSettings(gomock.Any(), defaultUserID).Return(stored, nil)
	repo.EXPECT().SaveSettings(gomock.Any(), defaultUserID, gomock.Any()).DoAndReturn(
		func(_ any, _ string, settings *domain.ReminderSettings) error {
			require.NotNil(t, settings.LastDrinkAt)
			assert.True(t, settings.LastDrinkAt.Equal(now))
			return nil
		})
	repo.EXPECT().AddIntake(gomock.Any(), defaultUserID, "2025-06-10", 250).Return(750, nil)

	scheduler := newStubScheduler()
	scheduler.plan = &domain.Plan{
		Today:    []time.Time{time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)},
		Tomorrow: []time.Time{time.Date(2025, 6, 11, 7, 0, 0, 0, time.UTC)},
	}

	h := NewDrinkHandler(scheduler, repo, testDefaults(), testClock(t), time.UTC)

	router := gin.New()
	router.POST("/drinks", h.HandleLogDrink)

	w := performRequest(router, http.MethodPost, "/drinks", drinkRequest{AmountML: 250}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "both", scheduler.lastOp)
	require.NotNil(t, scheduler.lastSettings)
	require.NotNil(t, scheduler.lastSettings.LastDrinkAt)
	assert.True(t, scheduler.lastSettings.LastDrinkAt.Equal(now))

	var resp drinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 750, resp.TotalML)
	assert.Equal(t, 2000, resp.DailyGoalML)
	assert.False(t, resp.GoalMet)
	assert.Equal(t, 1, resp.TodayCount)
	assert.Equal(t, 1, resp.TomorrowCount)
}

func TestHandleLogDrinkGoalMetSchedulesTomorrowOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockSettingsRepository(ctrl)
	repo.EXPECT().GetSettings(gomock.Any(), defaultUserID).Return(&domain.ReminderSettings{
		Window:          domain.NewWindow(7, 21),
		IntervalMinutes: 60,
		DailyGoalML:     2000,
	}, nil)
	repo.EXPECT().SaveSettings(gomock.Any(), defaultUserID, gomock.Any()).Return(nil)
	repo.EXPECT().AddIntake(gomock.Any(), defaultUserID, "2025-06-10", 500).Return(2100, nil)

	scheduler := newStubScheduler()

	h := NewDrinkHandler(scheduler, repo, testDefaults(), testClock(t), time.UTC)

	router := gin.New()
	router.POST("/drinks", h.HandleLogDrink)

	w := performRequest(router, http.MethodPost, "/drinks", drinkRequest{AmountML: 500}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tomorrow", scheduler.lastOp)

	var resp drinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.GoalMet)
	assert.Equal(t, 2100, resp.TotalML)
}

func TestHandleLogDrinkFirstDrinkUsesDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockSettingsRepository(ctrl)
	repo.EXPECT().GetSettings(gomock.Any(), defaultUserID).Return(nil, domain.ErrSettingsNotFound)
	repo.EXPECT().SaveSettings(gomock.Any(), defaultUserID, gomock.Any()).Return(nil)
	repo.EXPECT().AddIntake(gomock.Any(), defaultUserID, "2025-06-10", 300).Return(300, nil)

	scheduler := newStubScheduler()

	h := NewDrinkHandler(scheduler, repo, testDefaults(), testClock(t), time.UTC)

	router := gin.New()
	router.POST("/drinks", h.HandleLogDrink)

	w := performRequest(router, http.MethodPost, "/drinks", drinkRequest{AmountML: 300}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, scheduler.lastSettings)
	assert.Equal(t, domain.NewWindow(8, 22), scheduler.lastSettings.Window)
	assert.Equal(t, 2000, scheduler.lastSettings.DailyGoalML)
}

func TestHandleGetIntake(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockSettingsRepository(ctrl)
	repo.EXPECT().IntakeForDay(gomock.Any(), defaultUserID, "2025-06-10").Return(1500, nil)
	repo.EXPECT().GetSettings(gomock.Any(), defaultUserID).Return(&domain.ReminderSettings{
		Window:          domain.NewWindow(8, 22),
		IntervalMinutes: 60,
		DailyGoalML:     1200,
	}, nil)

	h := NewDrinkHandler(newStubScheduler(), repo, testDefaults(), testClock(t), time.UTC)

	router := gin.New()
	router.GET("/drinks/today", h.HandleGetIntake)

	w := performRequest(router, http.MethodGet, "/drinks/today", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp intakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-10", resp.Day)
	assert.Equal(t, 1500, resp.TotalML)
	assert.Equal(t, 1200, resp.DailyGoalML)
	assert.True(t, resp.GoalMet)
}

func TestHandleGetIntakeDefaultsWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockSettingsRepository(ctrl)
	repo.EXPECT().IntakeForDay(gomock.Any(), defaultUserID, "2025-06-10").Return(0, nil)
	repo.EXPECT().GetSettings(gomock.Any(), defaultUserID).Return(nil, domain.ErrSettingsNotFound)

	h := NewDrinkHandler(newStubScheduler(), repo, testDefaults(), testClock(t), time.UTC)

	router := gin.New()
	router.GET("/drinks/today", h.HandleGetIntake)

	w := performRequest(router, http.MethodGet, "/drinks/today", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp intakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalML)
	assert.Equal(t, 2000, resp.DailyGoalML)
	assert.False(t, resp.GoalMet)
}

func TestHandleLogDrinkRejectsNonPositiveAmount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockSettingsRepository(ctrl)
	scheduler := newStubScheduler()

	h := NewDrinkHandler(scheduler, repo, testDefaults(), testClock(t), time.UTC)

	router := gin.New()
	router.POST("/drinks", h.HandleLogDrink)

	for _, amount := range []int{0, -250} {
		w := performRequest(router, http.MethodPost, "/drinks", drinkRequest{AmountML: amount}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "amount %d", amount)
	}
	assert.Empty(t, scheduler.lastOp)
}
