// Package csvsource reads the four warehouse exports from a directory of CSV files
//
// Expected layout, one file per table with a header row
//
//	<dir>/fact_sales.csv
//	<dir>/dim_product.csv
//	<dir>/dim_customer.csv
//	<dir>/dim_date.csv
//
// Columns are looked up by header name so extra or reordered columns are fine
// Empty lines are skipped, every text cell passes through normalize.Label, and an
// empty numeric cell reads as zero. A numeric cell that does not parse fails the table
package csvsource
