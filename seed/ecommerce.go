package seed

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

func (s *Seeder) generateEcommerce(tx *sqlx.Tx) error {
	for _, c := range productCategories {
		var parent any
		if c.parent != 0 {
			parent = c.parent
		}
		_, err := tx.Exec(
			`INSERT INTO categories (category_id, category_name, parent_category_id)
			 VALUES (?, ?, ?)`,
			c.id, c.name, parent,
		)
		if err != nil {
			return err
		}
	}

	if err := s.generateProducts(tx); err != nil {
		return err
	}
	if err := s.generateCustomers(tx); err != nil {
		return err
	}
	if err := s.generateAddresses(tx); err != nil {
		return err
	}
	if err := s.generateOrders(tx); err != nil {
		return err
	}
	if err := s.generateProductReviews(tx); err != nil {
		return err
	}
	return s.generatePromotions(tx)
}

func (s *Seeder) generateProducts(tx *sqlx.Tx) error {
	for id := 1; id <= s.cfg.Products; id++ {
		name := fmt.Sprintf("%s %s", s.pick(productAdjectives), s.pick(productNouns))
		price := float64(s.between(500, 50000)) / 100
		cost := price * float64(s.between(40, 75)) / 100
		_, err := tx.Exec(
			`INSERT INTO products (product_id, sku, product_name, category_id,
				unit_price, cost_price, stock_quantity, is_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, fmt.Sprintf("SKU-%05d", id), name,
			productCategories[s.rng.Intn(len(productCategories))].id,
			price, float64(int(cost*100))/100, s.rng.Intn(500), s.rng.Float64() > 0.1,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) generateCustomers(tx *sqlx.Tx) error {
	for id := 1; id <= s.cfg.Customers; id++ {
		first := s.pick(firstNames)
		last := s.pick(lastNames)
		created := s.dateBetween(1460, 1)
		_, err := tx.Exec(
			`INSERT INTO customers (customer_id, email, first_name, last_name,
				city, country, customer_tier, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), id),
			first, last, s.pick(cities), "USA", s.pick(customerTiers),
			created.Format("2006-01-02 15:04:05"),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) generateAddresses(tx *sqlx.Tx) error {
	addressID := 1
	for customer := 1; customer <= s.cfg.Customers; customer++ {
		count := s.between(1, 3)
		for n := 0; n < count; n++ {
			// The first address is always the default shipping one.
			addrType := "shipping"
			if n > 0 && s.rng.Intn(2) == 1 {
				addrType = "billing"
			}
			_, err := tx.Exec(
				`INSERT INTO addresses (address_id, customer_id, address_type,
					street_address, city, postal_code, country, is_default)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				addressID, customer, addrType,
				fmt.Sprintf("%d %s", s.between(100, 9999), s.pick(streetNames)),
				s.pick(cities), fmt.Sprintf("%05d", s.between(10000, 99999)),
				"USA", n == 0,
			)
			if err != nil {
				return err
			}
			addressID++
		}
	}
	return nil
}

func (s *Seeder) generatePromotions(tx *sqlx.Tx) error {
	for id, p := range promotions {
		start := s.dateBetween(180, 30)
		var minOrder any
		if p.kind == "fixed_amount" {
			minOrder = 50
		}
		_, err := tx.Exec(
			`INSERT INTO promotions (promotion_id, promo_code, description,
				discount_type, discount_value, min_order_amount,
				start_date, end_date, usage_limit, times_used)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id+1, p.code, p.description, p.kind, p.value, minOrder,
			formatDate(start), formatDate(start.AddDate(0, 0, s.between(30, 180))),
			s.between(100, 1000), s.between(0, 200),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) generateOrders(tx *sqlx.Tx) error {
	itemID := 1
	for id := 1; id <= s.cfg.Orders; id++ {
		total := 0.0
		itemCount := s.between(1, 5)

		type line struct {
			product  int
			quantity int
			price    float64
		}
		lines := make([]line, 0, itemCount)
		for n := 0; n < itemCount; n++ {
			l := line{
				product:  s.between(1, s.cfg.Products),
				quantity: s.between(1, 4),
				price:    float64(s.between(500, 50000)) / 100,
			}
			lines = append(lines, l)
			total += l.price * float64(l.quantity)
		}

		_, err := tx.Exec(
			`INSERT INTO orders (order_id, customer_id, order_date, status, total_amount)
			 VALUES (?, ?, ?, ?, ?)`,
			id, s.between(1, s.cfg.Customers), formatDate(s.dateBetween(730, 1)),
			s.pick(orderStatuses), float64(int(total*100))/100,
		)
		if err != nil {
			return err
		}

		for _, l := range lines {
			_, err := tx.Exec(
				`INSERT INTO order_items (item_id, order_id, product_id, quantity, unit_price)
				 VALUES (?, ?, ?, ?, ?)`,
				itemID, id, l.product, l.quantity, l.price,
			)
			if err != nil {
				return err
			}
			itemID++
		}
	}
	return nil
}

func (s *Seeder) generateProductReviews(tx *sqlx.Tx) error {
	reviewID := 1
	for product := 1; product <= s.cfg.Products; product++ {
		for n := 0; n < s.rng.Intn(6); n++ {
			_, err := tx.Exec(
				`INSERT INTO reviews (review_id, product_id, customer_id, rating,
					review_text, review_date)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				reviewID, product, s.between(1, s.cfg.Customers), s.between(1, 5),
				s.pick(reviewTexts), formatDate(s.dateBetween(365, 1)),
			)
			if err != nil {
				return err
			}
			reviewID++
		}
	}
	return nil
}
