package condition

import (
	"strings"
	"testing"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestAddCondition(t *testing.T) {
	t.Parallel()

	valid := model.Condition{Name: "K", Description: "Max simultaneous auctions per seller", Value: 10}

	tests := []struct {
		name      string
		condition *model.Condition
		mockSetup func(m *repository.MockConditionStore)
		wantErr   error
	}{
		{
			name:      "null_condition",
			condition: nil,
			mockSetup: func(m *repository.MockConditionStore) {},
			wantErr:   auctionerrors.ErrNullInput,
		},
		{
			name:      "empty_name",
			condition: &model.Condition{Name: "", Description: "d", Value: 1},
			mockSetup: func(m *repository.MockConditionStore) {},
			wantErr:   auctionerrors.ErrValidation,
		},
		{
			name:      "name_too_long",
			condition: &model.Condition{Name: strings.Repeat("x", 16), Description: "d", Value: 1},
			mockSetup: func(m *repository.MockConditionStore) {},
			wantErr:   auctionerrors.ErrValidation,
		},
		{
			name:      "description_too_long",
			condition: &model.Condition{Name: "K", Description: strings.Repeat("x", 101), Value: 1},
			mockSetup: func(m *repository.MockConditionStore) {},
			wantErr:   auctionerrors.ErrValidation,
		},
		{
			name:      "duplicate_name",
			condition: &valid,
			mockSetup: func(m *repository.MockConditionStore) {
				m.EXPECT().GetConditionByName("K").Return(model.Condition{ConditionID: "other", Name: "K"}, nil)
			},
			wantErr: auctionerrors.ErrDuplicate,
		},
		{
			name:      "persistence_failure",
			condition: &valid,
			mockSetup: func(m *repository.MockConditionStore) {
				m.EXPECT().GetConditionByName("K").Return(model.Condition{}, auctionerrors.ErrNotFound)
				m.EXPECT().AddCondition(gomock.Any()).Return(auctionerrors.ErrPersistence)
			},
			wantErr: auctionerrors.ErrPersistence,
		},
		{
			name:      "success",
			condition: &valid,
			mockSetup: func(m *repository.MockConditionStore) {
				m.EXPECT().GetConditionByName("K").Return(model.Condition{}, auctionerrors.ErrNotFound)
				m.EXPECT().AddCondition(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockConditionStore(ctrl)
			tc.mockSetup(mockRepo)
			svc := NewService(mockRepo)

			stored, err := svc.AddCondition(tc.condition)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, stored.ConditionID) // id is generated on insert
			require.Equal(t, tc.condition.Name, stored.Name)
		})
	}
}

func TestUpdateCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		condition *model.Condition
		mockSetup func(m *repository.MockConditionStore)
		wantErr   error
	}{
		{
			name:      "null_condition",
			condition: nil,
			mockSetup: func(m *repository.MockConditionStore) {},
			wantErr:   auctionerrors.ErrNullInput,
		},
		{
			name:      "unknown_id",
			condition: &model.Condition{ConditionID: "missing", Name: "K", Description: "d", Value: 5},
			mockSetup: func(m *repository.MockConditionStore) {
				m.EXPECT().GetConditionByID("missing").Return(model.Condition{}, auctionerrors.ErrNotFound)
			},
			wantErr: auctionerrors.ErrNotFound,
		},
		{
			name:      "rename_collides_with_other_condition",
			condition: &model.Condition{ConditionID: "c1", Name: "M", Description: "d", Value: 5},
			mockSetup: func(m *repository.MockConditionStore) {
				m.EXPECT().GetConditionByID("c1").Return(model.Condition{ConditionID: "c1", Name: "K"}, nil)
				m.EXPECT().GetConditionByName("M").Return(model.Condition{ConditionID: "c2", Name: "M"}, nil)
			},
			wantErr: auctionerrors.ErrDuplicate,
		},
		{
			name:      "value_change_keeps_name",
			condition: &model.Condition{ConditionID: "c1", Name: "K", Description: "d", Value: 7},
			mockSetup: func(m *repository.MockConditionStore) {
				m.EXPECT().GetConditionByID("c1").Return(model.Condition{ConditionID: "c1", Name: "K"}, nil)
				m.EXPECT().GetConditionByName("K").Return(model.Condition{ConditionID: "c1", Name: "K"}, nil)
				m.EXPECT().UpdateCondition(model.Condition{ConditionID: "c1", Name: "K", Description: "d", Value: 7}).Return(nil)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockConditionStore(ctrl)
			tc.mockSetup(mockRepo)
			svc := NewService(mockRepo)

			updated, err := svc.UpdateCondition(tc.condition)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, *tc.condition, updated)
		})
	}
}

func TestTypedAccessors(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	svc := NewService(repo)

	seed := []model.Condition{
		{Name: model.ConditionK, Description: "seller limit", Value: 10},
		{Name: model.ConditionM, Description: "category limit", Value: 3},
		{Name: model.ConditionS, Description: "max score", Value: 10},
		{Name: model.ConditionN, Description: "rating window", Value: 5},
		{Name: model.ConditionT, Description: "perfect count", Value: 3},
		{Name: model.ConditionL, Description: "edit distance", Value: 10},
	}
	require.NoError(t, svc.Seed(seed))

	// Seeding again is a no-op.
	require.NoError(t, svc.Seed(seed))
	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, len(seed))

	for _, tc := range []struct {
		name string
		get  func() (int, error)
		want int
	}{
		{"K", svc.K, 10},
		{"M", svc.M, 3},
		{"S", svc.S, 10},
		{"N", svc.N, 5},
		{"T", svc.T, 3},
		{"L", svc.L, 10},
	} {
		got, err := tc.get()
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got, tc.name)
	}

	// A missing condition surfaces as an error, never a silent default.
	require.NoError(t, repo.DeleteCondition(mustID(t, svc, model.ConditionT)))
	_, err = svc.T()
	require.Error(t, err)
}

func mustID(t *testing.T, svc *Service, name string) string {
	t.Helper()
	c, err := svc.GetByName(name)
	require.NoError(t, err)
	return c.ConditionID
}
