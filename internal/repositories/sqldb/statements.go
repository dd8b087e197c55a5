package sqldb

// Statement templates are written for PostgreSQL and rebound per dialect.
// Table and column names are fixed here and never come from request input.
//
// List statements take $1, the raw search term (an empty string disables the
// search), and $2, the ILIKE pattern. The records list adds $3, the category
// filter, which is likewise disabled when empty.

const (
	recordColumns = `id, title, COALESCE(description, ''), COALESCE(category, ''), COALESCE(status, ''), created_at, updated_at`

	selectRecordByID = `SELECT ` + recordColumns + ` FROM records WHERE id = $1`

	listRecords = `SELECT ` + recordColumns + ` FROM records
		WHERE (CAST($1 AS TEXT) = '' OR title ILIKE $2 OR description ILIKE $2)
		  AND (CAST($3 AS TEXT) = '' OR category = $3)
		ORDER BY created_at DESC, id DESC`

	insertRecord = `INSERT INTO records (title, description, category, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + recordColumns

	updateRecord = `UPDATE records
		SET title = $1, description = $2, category = $3, status = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING ` + recordColumns

	deleteRecord = `DELETE FROM records WHERE id = $1 RETURNING id`
)

const (
	materialColumns = `id, name, unit, COALESCE(price_per_unit, 0), COALESCE(stock_quantity, 0), created_at, updated_at`

	selectMaterialByID = `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`

	listMaterials = `SELECT ` + materialColumns + ` FROM materials
		WHERE (CAST($1 AS TEXT) = '' OR name ILIKE $2)
		ORDER BY created_at DESC, id DESC`

	insertMaterial = `INSERT INTO materials (name, unit, price_per_unit, stock_quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + materialColumns

	updateMaterial = `UPDATE materials
		SET name = $1, unit = $2, price_per_unit = $3, stock_quantity = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING ` + materialColumns

	deleteMaterial = `DELETE FROM materials WHERE id = $1 RETURNING id`
)

const (
	operationColumns = `id, name, COALESCE(description, ''), COALESCE(cost, 0), COALESCE(duration_minutes, 0), created_at, updated_at`

	selectOperationByID = `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`

	listOperations = `SELECT ` + operationColumns + ` FROM operations
		WHERE (CAST($1 AS TEXT) = '' OR name ILIKE $2 OR description ILIKE $2)
		ORDER BY created_at DESC, id DESC`

	insertOperation = `INSERT INTO operations (name, description, cost, duration_minutes)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + operationColumns

	updateOperation = `UPDATE operations
		SET name = $1, description = $2, cost = $3, duration_minutes = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING ` + operationColumns

	deleteOperation = `DELETE FROM operations WHERE id = $1 RETURNING id`
)

const (
	orderColumns = `id, customer_name, COALESCE(description, ''), COALESCE(status, ''), COALESCE(total_cost, 0), deadline, created_at, updated_at`

	selectOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	listOrders = `SELECT ` + orderColumns + ` FROM orders
		WHERE (CAST($1 AS TEXT) = '' OR customer_name ILIKE $2 OR description ILIKE $2)
		ORDER BY created_at DESC, id DESC`

	insertOrder = `INSERT INTO orders (customer_name, description, status, total_cost, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orderColumns

	updateOrder = `UPDATE orders
		SET customer_name = $1, description = $2, status = $3, total_cost = $4, deadline = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING ` + orderColumns

	deleteOrder = `DELETE FROM orders WHERE id = $1 RETURNING id`
)
