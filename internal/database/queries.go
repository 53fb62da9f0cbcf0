package database

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (table_number, email, phone, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	InsertOrderLineSQL = `
		INSERT INTO order_items (order_id, menu_item_id, name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5)`

	GetOrderByIDSQL = `
		SELECT id, table_number, email, phone, total_amount, status, created_at
		FROM orders WHERE id = $1`

	GetOrderLinesSQL = `
		SELECT menu_item_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`

	ListOrdersSQL = `
		SELECT id, table_number, email, phone, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1
		WHERE id = $2
		RETURNING id`
)

// Menu queries
const (
	InsertMenuItemSQL = `
		INSERT INTO menu_items (name, description, price, category, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	UpdateMenuItemSQL = `
		UPDATE menu_items SET name = $1, description = $2, price = $3, category = $4, active = $5
		WHERE id = $6`

	DeleteMenuItemSQL = `
		DELETE FROM menu_items WHERE id = $1`

	GetMenuItemByIDSQL = `
		SELECT id, name, description, price, category, active, created_at
		FROM menu_items WHERE id = $1`

	ListMenuItemsSQL = `
		SELECT id, name, description, price, category, active, created_at
		FROM menu_items
		ORDER BY category ASC, name ASC`

	ListActiveMenuItemsSQL = `
		SELECT id, name, description, price, category, active, created_at
		FROM menu_items
		WHERE active = TRUE
		ORDER BY category ASC, name ASC`

	LookupMenuItemsSQL = `
		SELECT id, name, price, active
		FROM menu_items
		WHERE id = ANY($1)`
)

// Admin queries
const (
	GetAdminByUsernameSQL = `
		SELECT id, username, password_hash, full_name, email, role, active
		FROM admins WHERE username = $1`
)
