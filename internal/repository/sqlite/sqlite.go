// Package sqlite provides a SQLite-backed implementation of the
// repository.Store interface.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

// Ensure Store implements the full persistence contract
var _ repository.Store = (*Store)(nil)

// Store implements repository.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database path. It creates the
// parent directories and runs migrations automatically.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// The pragma goes into the DSN so every pooled connection enforces
	// foreign keys, not just the one that happened to run an Exec.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func nanos(t time.Time) int64 {
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// --- conditions ---

func (s *Store) AddCondition(c model.Condition) error {
	_, err := s.db.Exec(
		"INSERT INTO conditions (id, name, description, value) VALUES (?, ?, ?, ?)",
		c.ConditionID, c.Name, c.Description, c.Value,
	)
	if err != nil {
		return fmt.Errorf("add condition %s: %w", c.ConditionID, auctionerrors.ErrPersistence)
	}
	return nil
}

func (s *Store) scanCondition(row *sql.Row, key string) (model.Condition, error) {
	var c model.Condition
	err := row.Scan(&c.ConditionID, &c.Name, &c.Description, &c.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Condition{}, fmt.Errorf("get condition %s: %w", key, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Condition{}, fmt.Errorf("get condition %s: %w", key, auctionerrors.ErrPersistence)
	}
	return c, nil
}

func (s *Store) GetConditionByID(id string) (model.Condition, error) {
	row := s.db.QueryRow("SELECT id, name, description, value FROM conditions WHERE id = ?", id)
	return s.scanCondition(row, id)
}

func (s *Store) GetConditionByName(name string) (model.Condition, error) {
	row := s.db.QueryRow("SELECT id, name, description, value FROM conditions WHERE name = ?", name)
	return s.scanCondition(row, name)
}

func (s *Store) GetAllConditions() ([]model.Condition, error) {
	rows, err := s.db.Query("SELECT id, name, description, value FROM conditions ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list conditions: %w", auctionerrors.ErrPersistence)
	}
	defer rows.Close()

	var out []model.Condition
	for rows.Next() {
		var c model.Condition
		if err := rows.Scan(&c.ConditionID, &c.Name, &c.Description, &c.Value); err != nil {
			return nil, fmt.Errorf("list conditions: %w", auctionerrors.ErrPersistence)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCondition(c model.Condition) error {
	res, err := s.db.Exec(
		"UPDATE conditions SET name = ?, description = ?, value = ? WHERE id = ?",
		c.Name, c.Description, c.Value, c.ConditionID,
	)
	if err != nil {
		return fmt.Errorf("update condition %s: %w", c.ConditionID, auctionerrors.ErrPersistence)
	}
	return requireRow(res, "update condition", c.ConditionID)
}

func (s *Store) DeleteCondition(id string) error {
	res, err := s.db.Exec("DELETE FROM conditions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete condition %s: %w", id, auctionerrors.ErrPersistence)
	}
	return requireRow(res, "delete condition", id)
}

// --- categories ---

func (s *Store) AddCategory(c model.Category) error {
	parent := sql.NullString{String: c.ParentID, Valid: c.ParentID != ""}
	_, err := s.db.Exec(
		"INSERT INTO categories (id, name, parent_id) VALUES (?, ?, ?)",
		c.CategoryID, c.Name, parent,
	)
	if err != nil {
		return fmt.Errorf("add category %s: %w", c.CategoryID, auctionerrors.ErrPersistence)
	}
	return nil
}

func (s *Store) scanCategory(row *sql.Row, key string) (model.Category, error) {
	var c model.Category
	var parent sql.NullString
	err := row.Scan(&c.CategoryID, &c.Name, &parent)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, fmt.Errorf("get category %s: %w", key, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("get category %s: %w", key, auctionerrors.ErrPersistence)
	}
	c.ParentID = parent.String
	return c, nil
}

func (s *Store) GetCategoryByID(id string) (model.Category, error) {
	row := s.db.QueryRow("SELECT id, name, parent_id FROM categories WHERE id = ?", id)
	return s.scanCategory(row, id)
}

func (s *Store) GetCategoryByName(name string) (model.Category, error) {
	row := s.db.QueryRow("SELECT id, name, parent_id FROM categories WHERE name = ?", name)
	return s.scanCategory(row, name)
}

func (s *Store) GetAllCategories() ([]model.Category, error) {
	rows, err := s.db.Query("SELECT id, name, parent_id FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", auctionerrors.ErrPersistence)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		var parent sql.NullString
		if err := rows.Scan(&c.CategoryID, &c.Name, &parent); err != nil {
			return nil, fmt.Errorf("list categories: %w", auctionerrors.ErrPersistence)
		}
		c.ParentID = parent.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCategory(c model.Category) error {
	parent := sql.NullString{String: c.ParentID, Valid: c.ParentID != ""}
	res, err := s.db.Exec(
		"UPDATE categories SET name = ?, parent_id = ? WHERE id = ?",
		c.Name, parent, c.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update category %s: %w", c.CategoryID, auctionerrors.ErrPersistence)
	}
	return requireRow(res, "update category", c.CategoryID)
}

func (s *Store) DeleteCategory(id string) error {
	res, err := s.db.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, auctionerrors.ErrPersistence)
	}
	return requireRow(res, "delete category", id)
}

// --- products ---

func (s *Store) AddProduct(p model.Product) error {
	_, err := s.db.Exec(
		`INSERT INTO products (id, description, category_id, seller_id, starting_price, currency, start_date, end_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProductID, p.Description, p.CategoryID, p.SellerID, p.StartingPrice.String(), p.Currency,
		nanos(p.StartDate), nanos(p.EndDate), nanos(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("add product %s: %w", p.ProductID, auctionerrors.ErrPersistence)
	}
	return nil
}

const productColumns = "id, description, category_id, seller_id, starting_price, currency, start_date, end_date, created_at"

func scanProduct(scan func(dest ...any) error) (model.Product, error) {
	var p model.Product
	var price string
	var start, end, created int64
	if err := scan(&p.ProductID, &p.Description, &p.CategoryID, &p.SellerID, &price, &p.Currency, &start, &end, &created); err != nil {
		return model.Product{}, err
	}
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return model.Product{}, err
	}
	p.StartingPrice = parsed
	p.StartDate = fromNanos(start)
	p.EndDate = fromNanos(end)
	p.CreatedAt = fromNanos(created)
	return p, nil
}

func (s *Store) GetProductByID(id string) (model.Product, error) {
	row := s.db.QueryRow("SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, auctionerrors.ErrPersistence)
	}
	return p, nil
}

func (s *Store) queryProducts(query string, args ...any) ([]model.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", auctionerrors.ErrPersistence)
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("query products: %w", auctionerrors.ErrPersistence)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetAllProducts() ([]model.Product, error) {
	return s.queryProducts("SELECT " + productColumns + " FROM products ORDER BY created_at")
}

func (s *Store) DeleteProduct(id string) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, auctionerrors.ErrPersistence)
	}
	return requireRow(res, "delete product", id)
}

func (s *Store) CountActiveBySeller(sellerID string, now time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM products WHERE seller_id = ? AND end_date > ?",
		sellerID, nanos(now),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count auctions for seller %s: %w", sellerID, auctionerrors.ErrPersistence)
	}
	return count, nil
}

func (s *Store) CountActiveBySellerInCategory(sellerID, categoryID string, start, end time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM products WHERE seller_id = ? AND category_id = ? AND start_date < ? AND end_date > ?",
		sellerID, categoryID, nanos(end), nanos(start),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count category auctions for seller %s: %w", sellerID, auctionerrors.ErrPersistence)
	}
	return count, nil
}

func (s *Store) GetAllDescriptions() ([]string, error) {
	rows, err := s.db.Query("SELECT description FROM products")
	if err != nil {
		return nil, fmt.Errorf("list descriptions: %w", auctionerrors.ErrPersistence)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("list descriptions: %w", auctionerrors.ErrPersistence)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetProductsByBidder(bidderID string) ([]model.Product, error) {
	products, err := s.queryProducts(
		`SELECT DISTINCT p.id, p.description, p.category_id, p.seller_id, p.starting_price, p.currency, p.start_date, p.end_date, p.created_at
		 FROM products p JOIN bids b ON b.product_id = p.id
		 WHERE b.bidder_id = ? ORDER BY p.created_at`,
		bidderID,
	)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("get products for bidder %s: %w", bidderID, auctionerrors.ErrNotFound)
	}
	return products, nil
}

// --- bids ---

func (s *Store) RecordBid(b model.Bid) error {
	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM products WHERE id = ?", b.ProductID).Scan(&exists); err != nil {
		return fmt.Errorf("record bid for product %s: %w", b.ProductID, auctionerrors.ErrPersistence)
	}
	if exists == 0 {
		return fmt.Errorf("record bid for product %s: %w", b.ProductID, auctionerrors.ErrNotFound)
	}

	_, err := s.db.Exec(
		"INSERT INTO bids (id, product_id, bidder_id, amount, currency, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		b.BidID, b.ProductID, b.BidderID, b.Amount.String(), b.Currency, nanos(b.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("record bid for product %s: %w", b.ProductID, auctionerrors.ErrPersistence)
	}
	return nil
}

const bidColumns = "id, product_id, bidder_id, amount, currency, created_at"

func scanBid(scan func(dest ...any) error) (model.Bid, error) {
	var b model.Bid
	var amount string
	var created int64
	if err := scan(&b.BidID, &b.ProductID, &b.BidderID, &amount, &b.Currency, &created); err != nil {
		return model.Bid{}, err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Bid{}, err
	}
	b.Amount = parsed
	b.CreatedAt = fromNanos(created)
	return b, nil
}

func (s *Store) GetBidsByProduct(productID string) ([]model.Bid, error) {
	rows, err := s.db.Query("SELECT "+bidColumns+" FROM bids WHERE product_id = ? ORDER BY created_at", productID)
	if err != nil {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrPersistence)
	}
	defer rows.Close()

	var out []model.Bid
	for rows.Next() {
		b, err := scanBid(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrPersistence)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrPersistence)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrNoBids)
	}
	return out, nil
}

func (s *Store) GetHighestBid(productID string) (model.Bid, error) {
	row := s.db.QueryRow(
		"SELECT "+bidColumns+" FROM bids WHERE product_id = ? ORDER BY CAST(amount AS REAL) DESC, created_at ASC LIMIT 1",
		productID,
	)
	b, err := scanBid(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get highest bid for product %s: %w", productID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get highest bid for product %s: %w", productID, auctionerrors.ErrPersistence)
	}
	return b, nil
}

func (s *Store) CountActiveByBidder(bidderID string, now time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM bids b JOIN products p ON p.id = b.product_id
		 WHERE b.bidder_id = ? AND p.start_date <= ? AND p.end_date > ?`,
		bidderID, nanos(now), nanos(now),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active bids for bidder %s: %w", bidderID, auctionerrors.ErrPersistence)
	}
	return count, nil
}

// --- ratings ---

func (s *Store) AddRating(r model.Rating) error {
	_, err := s.db.Exec(
		"INSERT INTO ratings (id, product_id, rater_id, rated_id, score, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.RatingID, r.ProductID, r.RaterID, r.RatedID, r.Score, nanos(r.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("add rating %s: %w", r.RatingID, auctionerrors.ErrPersistence)
	}
	return nil
}

func (s *Store) GetRatingsByRatedUser(userID string) ([]model.Rating, error) {
	rows, err := s.db.Query(
		"SELECT id, product_id, rater_id, rated_id, score, created_at FROM ratings WHERE rated_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get ratings for user %s: %w", userID, auctionerrors.ErrPersistence)
	}
	defer rows.Close()

	var out []model.Rating
	for rows.Next() {
		var r model.Rating
		var created int64
		if err := rows.Scan(&r.RatingID, &r.ProductID, &r.RaterID, &r.RatedID, &r.Score, &created); err != nil {
			return nil, fmt.Errorf("get ratings for user %s: %w", userID, auctionerrors.ErrPersistence)
		}
		r.CreatedAt = fromNanos(created)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetRatingByRaterAndProduct(raterID, productID string) (model.Rating, error) {
	var r model.Rating
	var created int64
	err := s.db.QueryRow(
		"SELECT id, product_id, rater_id, rated_id, score, created_at FROM ratings WHERE rater_id = ? AND product_id = ?",
		raterID, productID,
	).Scan(&r.RatingID, &r.ProductID, &r.RaterID, &r.RatedID, &r.Score, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Rating{}, fmt.Errorf("get rating by %s for product %s: %w", raterID, productID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Rating{}, fmt.Errorf("get rating by %s for product %s: %w", raterID, productID, auctionerrors.ErrPersistence)
	}
	r.CreatedAt = fromNanos(created)
	return r, nil
}

// --- users ---

func (s *Store) AddUser(u model.User) error {
	email := sql.NullString{String: u.Email, Valid: u.Email != ""}
	_, err := s.db.Exec(
		"INSERT INTO users (id, username, email) VALUES (?, ?, ?)",
		u.UserID, u.Username, email,
	)
	if err != nil {
		return fmt.Errorf("add user %s: %w", u.UserID, auctionerrors.ErrPersistence)
	}
	return nil
}

func (s *Store) GetUserByID(id string) (model.User, error) {
	var u model.User
	var email sql.NullString
	err := s.db.QueryRow("SELECT id, username, email FROM users WHERE id = ?", id).Scan(&u.UserID, &u.Username, &email)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", id, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", id, auctionerrors.ErrPersistence)
	}
	u.Email = email.String
	return u, nil
}

// requireRow turns a zero-row result into ErrNotFound.
func requireRow(res sql.Result, op, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, id, auctionerrors.ErrPersistence)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", op, id, auctionerrors.ErrNotFound)
	}
	return nil
}
