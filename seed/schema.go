package seed

// createSchema defines the practice tables. Three domains: an employees
// schema for joins/aggregates, an ecommerce schema for multi-table
// exercises, and an analytics schema for window-function and
// time-series exercises.
const createSchema = `
CREATE TABLE departments (
	department_id   INTEGER PRIMARY KEY,
	department_name VARCHAR(100) NOT NULL,
	location        VARCHAR(100),
	budget          DECIMAL(15, 2)
);

CREATE TABLE employees (
	employee_id    INTEGER PRIMARY KEY,
	first_name     VARCHAR(50) NOT NULL,
	last_name      VARCHAR(50) NOT NULL,
	email          VARCHAR(100) UNIQUE,
	phone          VARCHAR(20),
	hire_date      DATE NOT NULL,
	job_title      VARCHAR(100),
	salary         DECIMAL(10, 2),
	commission_pct DECIMAL(4, 2),
	manager_id     INTEGER,
	department_id  INTEGER,
	is_active      BOOLEAN DEFAULT TRUE
);

CREATE TABLE salary_history (
	history_id    INTEGER PRIMARY KEY,
	employee_id   INTEGER,
	old_salary    DECIMAL(10, 2),
	new_salary    DECIMAL(10, 2),
	change_date   DATE NOT NULL,
	change_reason VARCHAR(200)
);

CREATE TABLE projects (
	project_id   INTEGER PRIMARY KEY,
	project_name VARCHAR(200) NOT NULL,
	start_date   DATE,
	end_date     DATE,
	budget       DECIMAL(15, 2),
	status       VARCHAR(20)
);

CREATE TABLE project_assignments (
	assignment_id   INTEGER PRIMARY KEY,
	employee_id     INTEGER,
	project_id      INTEGER,
	role            VARCHAR(50),
	hours_allocated INTEGER
);

CREATE TABLE performance_reviews (
	review_id   INTEGER PRIMARY KEY,
	employee_id INTEGER,
	reviewer_id INTEGER,
	review_date DATE NOT NULL,
	rating      INTEGER,
	comments    TEXT
);

CREATE TABLE customers (
	customer_id   INTEGER PRIMARY KEY,
	email         VARCHAR(255) UNIQUE NOT NULL,
	first_name    VARCHAR(100),
	last_name     VARCHAR(100),
	city          VARCHAR(100),
	country       VARCHAR(100) DEFAULT 'USA',
	customer_tier VARCHAR(20),
	created_at    TIMESTAMP
);

CREATE TABLE categories (
	category_id        INTEGER PRIMARY KEY,
	category_name      VARCHAR(100) NOT NULL,
	parent_category_id INTEGER
);

CREATE TABLE products (
	product_id     INTEGER PRIMARY KEY,
	sku            VARCHAR(50) UNIQUE NOT NULL,
	product_name   VARCHAR(255) NOT NULL,
	category_id    INTEGER,
	unit_price     DECIMAL(10, 2) NOT NULL,
	cost_price     DECIMAL(10, 2),
	stock_quantity INTEGER DEFAULT 0,
	is_active      BOOLEAN DEFAULT TRUE
);

CREATE TABLE orders (
	order_id     INTEGER PRIMARY KEY,
	customer_id  INTEGER,
	order_date   DATE NOT NULL,
	status       VARCHAR(20),
	total_amount DECIMAL(12, 2)
);

CREATE TABLE order_items (
	item_id    INTEGER PRIMARY KEY,
	order_id   INTEGER,
	product_id INTEGER,
	quantity   INTEGER,
	unit_price DECIMAL(10, 2)
);

CREATE TABLE reviews (
	review_id   INTEGER PRIMARY KEY,
	product_id  INTEGER,
	customer_id INTEGER,
	rating      INTEGER,
	review_text TEXT,
	review_date DATE
);

CREATE TABLE addresses (
	address_id     INTEGER PRIMARY KEY,
	customer_id    INTEGER,
	address_type   VARCHAR(20),
	street_address VARCHAR(255),
	city           VARCHAR(100),
	postal_code    VARCHAR(20),
	country        VARCHAR(100) DEFAULT 'USA',
	is_default     BOOLEAN DEFAULT FALSE
);

CREATE TABLE promotions (
	promotion_id     INTEGER PRIMARY KEY,
	promo_code       VARCHAR(50) UNIQUE,
	description      VARCHAR(255),
	discount_type    VARCHAR(20),
	discount_value   DECIMAL(10, 2),
	min_order_amount DECIMAL(10, 2),
	start_date       DATE,
	end_date         DATE,
	usage_limit      INTEGER,
	times_used       INTEGER DEFAULT 0
);

CREATE TABLE users (
	user_id       INTEGER PRIMARY KEY,
	anonymous_id  VARCHAR(100),
	email         VARCHAR(255),
	signup_date   DATE,
	signup_source VARCHAR(50),
	country       VARCHAR(100),
	device_type   VARCHAR(20),
	is_premium    BOOLEAN DEFAULT FALSE
);

CREATE TABLE sessions (
	session_id               VARCHAR(100) PRIMARY KEY,
	user_id                  INTEGER,
	session_start            TIMESTAMP NOT NULL,
	session_end              TIMESTAMP,
	landing_page             VARCHAR(500),
	exit_page                VARCHAR(500),
	device_type              VARCHAR(50),
	browser                  VARCHAR(50),
	os                       VARCHAR(50),
	referrer_source          VARCHAR(100),
	referrer_medium          VARCHAR(50),
	utm_campaign             VARCHAR(100),
	page_views               INTEGER DEFAULT 0,
	session_duration_seconds INTEGER
);

CREATE TABLE page_views (
	view_id              INTEGER PRIMARY KEY,
	session_id           VARCHAR(100),
	user_id              INTEGER,
	page_url             VARCHAR(500) NOT NULL,
	view_timestamp       TIMESTAMP NOT NULL,
	time_on_page_seconds INTEGER,
	scroll_depth_pct     INTEGER
);

CREATE TABLE events (
	event_id         INTEGER PRIMARY KEY,
	session_id       VARCHAR(100),
	user_id          INTEGER,
	event_name       VARCHAR(100) NOT NULL,
	event_category   VARCHAR(100),
	event_timestamp  TIMESTAMP NOT NULL,
	event_properties VARCHAR(1000),
	page_url         VARCHAR(500)
);

CREATE TABLE conversions (
	conversion_id        INTEGER PRIMARY KEY,
	user_id              INTEGER,
	session_id           VARCHAR(100),
	conversion_type      VARCHAR(50) NOT NULL,
	conversion_value     DECIMAL(12, 2),
	conversion_timestamp TIMESTAMP NOT NULL,
	attribution_channel  VARCHAR(100)
);

CREATE TABLE ab_tests (
	test_id    INTEGER PRIMARY KEY,
	test_name  VARCHAR(200) NOT NULL,
	start_date DATE,
	end_date   DATE,
	status     VARCHAR(20)
);

CREATE TABLE ab_test_assignments (
	assignment_id INTEGER PRIMARY KEY,
	test_id       INTEGER,
	user_id       INTEGER,
	variant       VARCHAR(50) NOT NULL,
	assigned_at   TIMESTAMP
);

CREATE TABLE daily_metrics (
	metric_date  DATE NOT NULL,
	metric_name  VARCHAR(100) NOT NULL,
	metric_value DECIMAL(15, 4),
	segment      VARCHAR(100) NOT NULL,
	PRIMARY KEY (metric_date, metric_name, segment)
);
`
