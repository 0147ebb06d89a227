package schema

// PostgresDDL creates the four tables when missing
var PostgresDDL = []string{
	`CREATE TABLE IF NOT EXISTS fact_sales (
		sls_ord_num  text NOT NULL,
		prd_key      text NOT NULL,
		sls_cust_id  text NOT NULL,
		sls_order_dt text NOT NULL,
		sls_sales    double precision NOT NULL DEFAULT 0,
		sls_quantity integer NOT NULL DEFAULT 0,
		sls_price    double precision NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS dim_product (
		prd_key  text PRIMARY KEY,
		prd_nm   text NOT NULL,
		cat_key  text NOT NULL DEFAULT '',
		"CAT"    text NOT NULL DEFAULT '',
		"SUBCAT" text NOT NULL DEFAULT '',
		prd_cost double precision NOT NULL DEFAULT 0,
		"COLOR"  text,
		"STATUS" text
	)`,
	`CREATE TABLE IF NOT EXISTS dim_customer (
		customer_id    text PRIMARY KEY,
		firstname      text NOT NULL DEFAULT '',
		lastname       text NOT NULL DEFAULT '',
		gender         text NOT NULL DEFAULT '',
		country        text NOT NULL DEFAULT '',
		marital_status text,
		birth_date     text NOT NULL DEFAULT '',
		email          text NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS dim_date (
		date        text PRIMARY KEY,
		year        integer NOT NULL,
		month       integer NOT NULL,
		day_of_week integer NOT NULL,
		is_weekend  boolean NOT NULL DEFAULT false
	)`,
}

// ClickHouseDDL creates the four tables when missing, one statement per entry
var ClickHouseDDL = []string{
	`CREATE TABLE IF NOT EXISTS fact_sales (
		sls_ord_num  String,
		prd_key      String,
		sls_cust_id  String,
		sls_order_dt String,
		sls_sales    Float64,
		sls_quantity Int32,
		sls_price    Float64
	) ENGINE = MergeTree ORDER BY (sls_order_dt, sls_ord_num)`,
	`CREATE TABLE IF NOT EXISTS dim_product (
		prd_key  String,
		prd_nm   String,
		cat_key  String,
		CAT      String,
		SUBCAT   String,
		prd_cost Float64,
		COLOR    String,
		STATUS   String
	) ENGINE = MergeTree ORDER BY prd_key`,
	`CREATE TABLE IF NOT EXISTS dim_customer (
		customer_id    String,
		firstname      String,
		lastname       String,
		gender         String,
		country        String,
		marital_status String,
		birth_date     String,
		email          String
	) ENGINE = MergeTree ORDER BY customer_id`,
	`CREATE TABLE IF NOT EXISTS dim_date (
		date        String,
		year        Int32,
		month       Int32,
		day_of_week Int32,
		is_weekend  Bool
	) ENGINE = MergeTree ORDER BY date`,
}
