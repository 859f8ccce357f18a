package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "auction.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func storedProduct(productID, sellerID, categoryID string, start, end time.Time) model.Product {
	return model.Product{
		ProductID:     productID,
		Description:   "stored listing " + productID,
		CategoryID:    categoryID,
		SellerID:      sellerID,
		StartingPrice: decimal.RequireFromString("99.50"),
		Currency:      "EUR",
		StartDate:     start,
		EndDate:       end,
		CreatedAt:     time.Now().UTC().Truncate(time.Nanosecond),
	}
}

func TestSQLiteConditions(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := model.Condition{ConditionID: "c1", Name: "K", Description: "seller limit", Value: 10}
	require.NoError(t, store.AddCondition(c))

	got, err := store.GetConditionByName("K")
	require.NoError(t, err)
	require.Equal(t, c, got)

	// UNIQUE name constraint
	err = store.AddCondition(model.Condition{ConditionID: "c2", Name: "K", Description: "dup", Value: 1})
	require.ErrorIs(t, err, auctionerrors.ErrPersistence)

	c.Value = 12
	require.NoError(t, store.UpdateCondition(c))
	got, err = store.GetConditionByID("c1")
	require.NoError(t, err)
	require.Equal(t, 12, got.Value)

	require.ErrorIs(t, store.UpdateCondition(model.Condition{ConditionID: "missing", Name: "X", Description: "d", Value: 1}), auctionerrors.ErrNotFound)

	require.NoError(t, store.DeleteCondition("c1"))
	_, err = store.GetConditionByName("K")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestSQLiteCategories(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	root := model.Category{CategoryID: "cat1", Name: "Electronics"}
	child := model.Category{CategoryID: "cat2", Name: "Phones", ParentID: "cat1"}
	require.NoError(t, store.AddCategory(root))
	require.NoError(t, store.AddCategory(child))

	got, err := store.GetCategoryByName("Phones")
	require.NoError(t, err)
	require.Equal(t, child, got)

	all, err := store.GetAllCategories()
	require.NoError(t, err)
	require.Equal(t, []model.Category{root, child}, all) // sorted by name

	// Deleting the parent detaches the child instead of cascading.
	require.NoError(t, store.DeleteCategory("cat1"))
	got, err = store.GetCategoryByID("cat2")
	require.NoError(t, err)
	require.Empty(t, got.ParentID)
}

func TestSQLiteProducts(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	store := newTestStore(t)

	p := storedProduct("prod1", "seller1", "cat1", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, store.AddProduct(p))

	t.Run("round_trip", func(t *testing.T) {
		got, err := store.GetProductByID("prod1")
		require.NoError(t, err)
		require.True(t, p.StartingPrice.Equal(got.StartingPrice))
		require.True(t, p.StartDate.Equal(got.StartDate))
		require.True(t, p.EndDate.Equal(got.EndDate))
		require.Equal(t, p.SellerID, got.SellerID)
	})

	t.Run("unknown_id", func(t *testing.T) {
		_, err := store.GetProductByID("nope")
		require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	})

	t.Run("counts", func(t *testing.T) {
		require.NoError(t, store.AddProduct(storedProduct("ended", "seller1", "cat1", now.Add(-3*time.Hour), now.Add(-2*time.Hour))))
		require.NoError(t, store.AddProduct(storedProduct("future", "seller1", "cat2", now.Add(time.Hour), now.Add(2*time.Hour))))

		count, err := store.CountActiveBySeller("seller1", now)
		require.NoError(t, err)
		require.Equal(t, 2, count) // running + future, ended excluded

		count, err = store.CountActiveBySellerInCategory("seller1", "cat1", now, now.Add(30*time.Minute))
		require.NoError(t, err)
		require.Equal(t, 1, count)

		count, err = store.CountActiveBySellerInCategory("seller1", "cat1", now.Add(2*time.Hour), now.Add(3*time.Hour))
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	t.Run("descriptions", func(t *testing.T) {
		descs, err := store.GetAllDescriptions()
		require.NoError(t, err)
		require.Contains(t, descs, "stored listing prod1")
	})
}

func TestSQLiteBids(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	store := newTestStore(t)
	require.NoError(t, store.AddProduct(storedProduct("prod1", "seller1", "cat1", now.Add(-time.Hour), now.Add(time.Hour))))

	t.Run("unknown_product", func(t *testing.T) {
		err := store.RecordBid(model.Bid{BidID: "b0", ProductID: "nope", BidderID: "user1", Amount: decimal.NewFromInt(100), Currency: "EUR", CreatedAt: now})
		require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	})

	// Decimal ordering must not fall into lexicographic traps: "1000" > "999".
	bids := []model.Bid{
		{BidID: "b1", ProductID: "prod1", BidderID: "user1", Amount: decimal.RequireFromString("999"), Currency: "EUR", CreatedAt: now},
		{BidID: "b2", ProductID: "prod1", BidderID: "user2", Amount: decimal.RequireFromString("1000"), Currency: "EUR", CreatedAt: now.Add(time.Second)},
		{BidID: "b3", ProductID: "prod1", BidderID: "user3", Amount: decimal.RequireFromString("999.50"), Currency: "EUR", CreatedAt: now.Add(2 * time.Second)},
	}
	for _, b := range bids {
		require.NoError(t, store.RecordBid(b))
	}

	t.Run("highest_bid", func(t *testing.T) {
		highest, err := store.GetHighestBid("prod1")
		require.NoError(t, err)
		require.Equal(t, "b2", highest.BidID)
	})

	t.Run("bids_in_insertion_order", func(t *testing.T) {
		got, err := store.GetBidsByProduct("prod1")
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "b1", got[0].BidID)
		require.Equal(t, "b3", got[2].BidID)
	})

	t.Run("no_bids", func(t *testing.T) {
		require.NoError(t, store.AddProduct(storedProduct("empty", "seller1", "cat1", now, now.Add(time.Hour))))
		_, err := store.GetBidsByProduct("empty")
		require.ErrorIs(t, err, auctionerrors.ErrNoBids)
		_, err = store.GetHighestBid("empty")
		require.ErrorIs(t, err, auctionerrors.ErrNoBids)
	})

	t.Run("active_bid_count", func(t *testing.T) {
		require.NoError(t, store.AddProduct(storedProduct("ended", "seller1", "cat1", now.Add(-3*time.Hour), now.Add(-2*time.Hour))))
		require.NoError(t, store.RecordBid(model.Bid{BidID: "b4", ProductID: "ended", BidderID: "user1", Amount: decimal.NewFromInt(50), Currency: "EUR", CreatedAt: now.Add(-150 * time.Minute)}))

		count, err := store.CountActiveByBidder("user1", now)
		require.NoError(t, err)
		require.Equal(t, 1, count) // the bid on the ended auction no longer counts
	})

	t.Run("products_by_bidder", func(t *testing.T) {
		products, err := store.GetProductsByBidder("user1")
		require.NoError(t, err)
		require.Len(t, products, 2)

		_, err = store.GetProductsByBidder("stranger")
		require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	})
}

func TestSQLiteRatings(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	store := newTestStore(t)
	require.NoError(t, store.AddProduct(storedProduct("prod1", "seller1", "cat1", now.Add(-2*time.Hour), now.Add(-time.Hour))))
	require.NoError(t, store.AddProduct(storedProduct("prod2", "seller1", "cat1", now.Add(-2*time.Hour), now.Add(-time.Hour))))

	r1 := model.Rating{RatingID: "r1", ProductID: "prod1", RaterID: "buyer", RatedID: "seller1", Score: 6, CreatedAt: now.Add(-time.Hour)}
	r2 := model.Rating{RatingID: "r2", ProductID: "prod2", RaterID: "buyer", RatedID: "seller1", Score: 9, CreatedAt: now}
	require.NoError(t, store.AddRating(r1))
	require.NoError(t, store.AddRating(r2))

	t.Run("most_recent_first", func(t *testing.T) {
		ratings, err := store.GetRatingsByRatedUser("seller1")
		require.NoError(t, err)
		require.Equal(t, []model.Rating{r2, r1}, ratings)
	})

	t.Run("unique_rater_product_pair", func(t *testing.T) {
		err := store.AddRating(model.Rating{RatingID: "r3", ProductID: "prod1", RaterID: "buyer", RatedID: "seller1", Score: 2, CreatedAt: now})
		require.ErrorIs(t, err, auctionerrors.ErrPersistence)
	})

	t.Run("by_rater_and_product", func(t *testing.T) {
		got, err := store.GetRatingByRaterAndProduct("buyer", "prod1")
		require.NoError(t, err)
		require.Equal(t, r1, got)

		_, err = store.GetRatingByRaterAndProduct("buyer", "nope")
		require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	})
}

func TestSQLiteUsers(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	u := model.User{UserID: "u1", Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.AddUser(u))

	got, err := store.GetUserByID("u1")
	require.NoError(t, err)
	require.Equal(t, u, got)

	_, err = store.GetUserByID("u2")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}
