package review

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReviewRepository struct {
	reviews []*entities.Review
}

func (f *fakeReviewRepository) CreateReview(_ context.Context, review *entities.Review) error {
	review.ID = uuid.New()
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepository) GetReviewsByItem(_ context.Context, itemID uuid.UUID) ([]*entities.Review, error) {
	var result []*entities.Review
	for _, review := range f.reviews {
		if review.ItemID == itemID {
			result = append(result, review)
		}
	}
	return result, nil
}

type fakeCatalogRepository struct {
	item *entities.Item
}

func (f *fakeCatalogRepository) CreateItem(_ context.Context, _ *entities.Item) error  { return nil }
func (f *fakeCatalogRepository) UpsertItemByName(_ context.Context, _ *entities.Item) error {
	return nil
}
func (f *fakeCatalogRepository) GetItems(_ context.Context) ([]*entities.Item, error) {
	return []*entities.Item{f.item}, nil
}
func (f *fakeCatalogRepository) GetItemByID(_ context.Context, id string) (*entities.Item, error) {
	if f.item.ID.String() == id {
		return f.item, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCatalogRepository) GetItemByName(_ context.Context, name string) (*entities.Item, error) {
	if f.item.Name == name {
		return f.item, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCatalogRepository) ItemNameExists(_ context.Context, name string) (bool, error) {
	return f.item.Name == name, nil
}

type fakeUserRepository struct {
	user *entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, _ *entities.User) error { return nil }
func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if f.user.ID.String() == id {
		return f.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	if f.user.Username == username {
		return f.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	return f.user.Username == username, nil
}

func TestReviewService_WriteReview(t *testing.T) {
	item := &entities.Item{ID: uuid.New(), Name: "Tote", Price: 1200}
	author := &entities.User{ID: uuid.New(), Username: "greta"}
	reviews := &fakeReviewRepository{}
	service := NewReviewService(reviews, &fakeCatalogRepository{item: item}, &fakeUserRepository{user: author})

	res, err := service.WriteReview(context.Background(), domain.WriteReviewRequest{
		Body: "Holds a full week of groceries.",
	}, "Tote", author.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "greta", res.Username)
	assert.Len(t, reviews.reviews, 1)

	t.Run("unknown item", func(t *testing.T) {
		_, err := service.WriteReview(context.Background(), domain.WriteReviewRequest{
			Body: "nope",
		}, "Unobtainium", author.ID.String())
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestReviewService_GetReviews(t *testing.T) {
	item := &entities.Item{ID: uuid.New(), Name: "Tote", Price: 1200}
	author := &entities.User{ID: uuid.New(), Username: "greta"}
	reviews := &fakeReviewRepository{}
	service := NewReviewService(reviews, &fakeCatalogRepository{item: item}, &fakeUserRepository{user: author})

	for _, body := range []string{"first", "second"} {
		_, err := service.WriteReview(context.Background(), domain.WriteReviewRequest{Body: body}, "Tote", author.ID.String())
		require.NoError(t, err)
	}

	result, err := service.GetReviews(context.Background(), "Tote")
	require.NoError(t, err)
	assert.Len(t, result, 2)

	_, err = service.GetReviews(context.Background(), "Unobtainium")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
