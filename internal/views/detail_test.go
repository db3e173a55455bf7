package views

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoga-studio/front/internal/clients"
	"github.com/yoga-studio/front/internal/models"
)

// detailEnv serves session 1 from an in-memory participant list that the
// participate/unparticipate fakes mutate, like the real API would.
func detailEnv(t *testing.T, users ...int64) (*testEnv, *[]string) {
	t.Helper()
	env := newTestEnv()
	var (
		mu    sync.Mutex
		calls []string
	)
	current := &models.Session{ID: 1, Name: "session 1", Description: "my description", TeacherID: 1, Users: users}

	env.sessions.DetailFunc = func(ctx context.Context, id int64) (*models.Session, error) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, "detail")
		if id != 1 {
			return nil, clients.NewStatusError("GET", "/api/session/9", 404, "")
		}
		return current.Clone(), nil
	}
	env.sessions.ParticipateFunc = func(ctx context.Context, id, userID int64) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, "participate")
		current.AddParticipant(userID)
		return nil
	}
	env.sessions.UnParticipateFunc = func(ctx context.Context, id, userID int64) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, "unparticipate")
		current.RemoveParticipant(userID)
		return nil
	}
	env.sessions.DeleteFunc = func(ctx context.Context, id int64) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, "delete")
		return nil
	}
	env.teachers.DetailFunc = func(ctx context.Context, id int64) (*models.Teacher, error) {
		t := margot
		t.ID = id
		return &t, nil
	}
	return env, &calls
}

func TestDetail_InitLoadsSessionAndTeacher(t *testing.T) {
	env, _ := detailEnv(t)
	env.loginAs(4, false)

	ctl := NewDetailController(env.deps, env.out, 1)
	assert.Equal(t, PhaseIdle, ctl.View().Phase)
	require.NoError(t, ctl.Init(context.Background()))

	view := ctl.View()
	assert.Equal(t, PhaseLoaded, view.Phase)
	require.NotNil(t, view.Session)
	assert.Equal(t, "session 1", view.Session.Name)
	require.NotNil(t, view.Teacher)
	assert.Equal(t, "Margot DELAHAYE", view.Teacher.DisplayName())
	assert.Equal(t, int64(4), view.UserID)
	assert.False(t, view.IsAdmin)
	assert.False(t, view.IsParticipate)
}

func TestDetail_ControlsFollowRoleAndParticipation(t *testing.T) {
	tests := []struct {
		name  string
		admin bool
		users []int64
		want  []Control
	}{
		{name: "user not participating", users: nil, want: []Control{ControlBack, ControlParticipate}},
		{name: "user participating", users: []int64{4}, want: []Control{ControlBack, ControlUnParticipate}},
		{name: "admin", admin: true, users: []int64{4}, want: []Control{ControlBack, ControlDelete}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := detailEnv(t, tt.users...)
			env.loginAs(4, tt.admin)
			ctl := NewDetailController(env.deps, env.out, 1)
			require.NoError(t, ctl.Init(context.Background()))

			assert.ElementsMatch(t, tt.want, ctl.Controls())
			view := ctl.View()
			assert.Equal(t, len(tt.users) > 0, view.IsParticipate)
			assert.Equal(t, tt.admin, view.IsAdmin)
			if view.IsParticipate {
				assert.False(t, view.Shows(ControlParticipate))
			}
		})
	}
}

func TestDetail_OnlyBackBeforeLoad(t *testing.T) {
	env, _ := detailEnv(t)
	env.loginAs(4, false)
	ctl := NewDetailController(env.deps, env.out, 1)

	assert.Equal(t, []Control{ControlBack}, ctl.Controls())
	err := ctl.Participate(context.Background())
	assert.ErrorIs(t, err, ErrActionUnavailable)
}

func TestDetail_ParticipateRefetches(t *testing.T) {
	env, calls := detailEnv(t)
	env.loginAs(4, false)
	ctl := NewDetailController(env.deps, env.out, 1)
	ctx := context.Background()
	require.NoError(t, ctl.Init(ctx))

	require.NoError(t, ctl.Participate(ctx))

	view := ctl.View()
	assert.Equal(t, PhaseLoaded, view.Phase)
	assert.Equal(t, []int64{4}, view.Session.Users)
	assert.True(t, view.IsParticipate)
	assert.True(t, view.Shows(ControlUnParticipate))
	assert.False(t, view.Shows(ControlParticipate))
	assert.Equal(t, []string{"detail", "participate", "detail"}, *calls)

	// already participating: the control is gone and nothing is sent
	err := ctl.Participate(ctx)
	assert.ErrorIs(t, err, ErrActionUnavailable)
	assert.Len(t, *calls, 3)

	require.NoError(t, ctl.UnParticipate(ctx))
	view = ctl.View()
	assert.Empty(t, view.Session.Users)
	assert.False(t, view.IsParticipate)
	assert.Equal(t, []string{"detail", "participate", "detail", "unparticipate", "detail"}, *calls)
}

func TestDetail_UserCannotDelete(t *testing.T) {
	env, calls := detailEnv(t)
	env.loginAs(4, false)
	ctl := NewDetailController(env.deps, env.out, 1)
	require.NoError(t, ctl.Init(context.Background()))

	err := ctl.Delete(context.Background())
	assert.ErrorIs(t, err, ErrActionUnavailable)
	assert.NotContains(t, *calls, "delete")
	assert.Empty(t, env.out.navigations)
}

func TestDetail_AdminDeleteNavigatesAway(t *testing.T) {
	env, calls := detailEnv(t)
	env.loginAs(1, true)
	ctl := NewDetailController(env.deps, env.out, 1)
	ctx := context.Background()
	require.NoError(t, ctl.Init(ctx))

	err := ctl.Participate(ctx)
	assert.ErrorIs(t, err, ErrActionUnavailable)

	require.NoError(t, ctl.Delete(ctx))

	assert.Equal(t, []string{"detail", "delete"}, *calls)
	assert.Equal(t, []string{RouteSessions}, env.out.navigations)
	require.Len(t, env.out.notifications, 1)
	assert.Equal(t, notification{"Session deleted !", "Close", NotificationDuration}, env.out.notifications[0])
	assert.Equal(t, 3000, int(env.out.notifications[0].Duration.Milliseconds()))

	assert.Equal(t, PhaseNavigatedAway, ctl.View().Phase)
	assert.ErrorIs(t, ctl.Delete(ctx), ErrActionUnavailable)
}

func TestDetail_FetchErrorsSurface(t *testing.T) {
	env, _ := detailEnv(t)
	env.loginAs(4, false)

	ctl := NewDetailController(env.deps, env.out, 9)
	err := ctl.Init(context.Background())
	require.Error(t, err)
	assert.True(t, clients.IsNotFound(err))

	env2, _ := detailEnv(t)
	env2.loginAs(4, false)
	env2.teachers.DetailFunc = func(ctx context.Context, id int64) (*models.Teacher, error) {
		return nil, errors.New("teacher service down")
	}
	ctl = NewDetailController(env2.deps, env2.out, 1)
	assert.ErrorContains(t, ctl.Init(context.Background()), "teacher service down")
	assert.Nil(t, ctl.View().Session)
}

func TestDetail_FailedMutationKeepsState(t *testing.T) {
	env, calls := detailEnv(t)
	env.loginAs(4, false)
	env.sessions.ParticipateFunc = func(ctx context.Context, id, userID int64) error {
		return clients.NewStatusError("POST", "/api/session/1/participate/4", 400, "")
	}
	ctl := NewDetailController(env.deps, env.out, 1)
	ctx := context.Background()
	require.NoError(t, ctl.Init(ctx))

	err := ctl.Participate(ctx)
	require.Error(t, err)
	assert.True(t, clients.IsBadRequest(err))

	view := ctl.View()
	assert.Equal(t, PhaseLoaded, view.Phase)
	assert.False(t, view.IsParticipate)
	assert.True(t, view.Shows(ControlParticipate))
	assert.Equal(t, []string{"detail"}, *calls)
}

func TestDetail_NotLogged(t *testing.T) {
	env, _ := detailEnv(t)
	ctl := NewDetailController(env.deps, env.out, 1)
	assert.ErrorIs(t, ctl.Init(context.Background()), ErrNotLogged)
}

func TestDetail_LastFetchWins(t *testing.T) {
	env := newTestEnv()
	env.loginAs(4, false)
	env.teachers.DetailFunc = func(ctx context.Context, id int64) (*models.Teacher, error) {
		t := margot
		return &t, nil
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	var (
		mu    sync.Mutex
		count int
	)
	env.sessions.DetailFunc = func(ctx context.Context, id int64) (*models.Session, error) {
		mu.Lock()
		count++
		n := count
		mu.Unlock()
		if n == 1 {
			close(entered)
			<-release
			return &models.Session{ID: 1, TeacherID: 1, Users: []int64{}}, nil
		}
		return &models.Session{ID: 1, TeacherID: 1, Users: []int64{4}}, nil
	}

	ctl := NewDetailController(env.deps, env.out, 1)
	done := make(chan error, 1)
	go func() { done <- ctl.Init(context.Background()) }()

	<-entered
	require.NoError(t, ctl.Init(context.Background()))
	close(release)
	require.NoError(t, <-done)

	view := ctl.View()
	assert.Equal(t, []int64{4}, view.Session.Users)
	assert.True(t, view.IsParticipate)
}

func TestDetail_CloseDropsLateAnswers(t *testing.T) {
	env := newTestEnv()
	env.loginAs(4, false)
	entered := make(chan struct{})
	release := make(chan struct{})
	env.sessions.DetailFunc = func(ctx context.Context, id int64) (*models.Session, error) {
		close(entered)
		<-release
		return &models.Session{ID: 1, TeacherID: 1}, nil
	}
	env.teachers.DetailFunc = func(ctx context.Context, id int64) (*models.Teacher, error) {
		t.Fatal("teacher fetched after close")
		return nil, nil
	}

	ctl := NewDetailController(env.deps, env.out, 1)
	done := make(chan error, 1)
	go func() { done <- ctl.Init(context.Background()) }()

	<-entered
	ctl.Close()
	close(release)
	require.NoError(t, <-done)

	assert.Nil(t, ctl.View().Session)
	assert.ErrorIs(t, ctl.Init(context.Background()), ErrClosed)
}

func TestDetail_Back(t *testing.T) {
	env := newTestEnv()
	NewDetailController(env.deps, env.out, 1).Back()
	assert.Equal(t, 1, env.out.backs)
}
