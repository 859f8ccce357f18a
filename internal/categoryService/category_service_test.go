package category

import (
	"strings"
	"testing"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestAddCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		category  *model.Category
		mockSetup func(m *repository.MockCategoryStore)
		wantErr   error
	}{
		{
			name:      "null_category",
			category:  nil,
			mockSetup: func(m *repository.MockCategoryStore) {},
			wantErr:   auctionerrors.ErrNullInput,
		},
		{
			name:      "empty_name",
			category:  &model.Category{Name: ""},
			mockSetup: func(m *repository.MockCategoryStore) {},
			wantErr:   auctionerrors.ErrValidation,
		},
		{
			name:      "name_too_long",
			category:  &model.Category{Name: strings.Repeat("x", 101)},
			mockSetup: func(m *repository.MockCategoryStore) {},
			wantErr:   auctionerrors.ErrValidation,
		},
		{
			name:     "duplicate_name",
			category: &model.Category{Name: "Electronics"},
			mockSetup: func(m *repository.MockCategoryStore) {
				m.EXPECT().GetCategoryByName("Electronics").Return(model.Category{CategoryID: "cat1", Name: "Electronics"}, nil)
			},
			wantErr: auctionerrors.ErrDuplicate,
		},
		{
			name:     "success_with_parent",
			category: &model.Category{Name: "Phones", ParentID: "cat1"},
			mockSetup: func(m *repository.MockCategoryStore) {
				m.EXPECT().GetCategoryByName("Phones").Return(model.Category{}, auctionerrors.ErrNotFound)
				m.EXPECT().AddCategory(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockCategoryStore(ctrl)
			tc.mockSetup(mockRepo)
			svc := NewService(mockRepo)

			stored, err := svc.AddCategory(tc.category)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, stored.CategoryID)
			require.Equal(t, tc.category.ParentID, stored.ParentID)
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	t.Parallel()

	t.Run("rename_collides_with_other_category", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository.NewMockCategoryStore(ctrl)
		mockRepo.EXPECT().GetCategoryByID("cat1").Return(model.Category{CategoryID: "cat1", Name: "Phones"}, nil)
		mockRepo.EXPECT().GetCategoryByName("Electronics").Return(model.Category{CategoryID: "cat2", Name: "Electronics"}, nil)

		svc := NewService(mockRepo)
		_, err := svc.UpdateCategory(&model.Category{CategoryID: "cat1", Name: "Electronics"})
		require.ErrorIs(t, err, auctionerrors.ErrDuplicate)
	})

	t.Run("reparent", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		updated := model.Category{CategoryID: "cat1", Name: "Phones", ParentID: "cat9"}

		mockRepo := repository.NewMockCategoryStore(ctrl)
		mockRepo.EXPECT().GetCategoryByID("cat1").Return(model.Category{CategoryID: "cat1", Name: "Phones"}, nil)
		mockRepo.EXPECT().GetCategoryByName("Phones").Return(model.Category{CategoryID: "cat1", Name: "Phones"}, nil)
		mockRepo.EXPECT().UpdateCategory(updated).Return(nil)

		svc := NewService(mockRepo)
		got, err := svc.UpdateCategory(&updated)
		require.NoError(t, err)
		require.Equal(t, updated, got)
	})
}

func TestCategoryTree(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	svc := NewService(repo)

	root, err := svc.AddCategory(&model.Category{Name: "Electronics"})
	require.NoError(t, err)
	child, err := svc.AddCategory(&model.Category{Name: "Phones", ParentID: root.CategoryID})
	require.NoError(t, err)

	got, err := svc.GetByName("Phones")
	require.NoError(t, err)
	require.Equal(t, root.CategoryID, got.ParentID)

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.ElementsMatch(t, []model.Category{root, child}, all)

	require.NoError(t, svc.DeleteCategory(child.CategoryID))
	require.ErrorIs(t, svc.DeleteCategory(child.CategoryID), auctionerrors.ErrNotFound)
}
