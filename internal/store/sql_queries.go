package store

const (
	nodeColumns = `id, node_type, slug, author_id, data, created_at, updated_at`

	createNode = `INSERT INTO nodes (node_type, slug, author_id, data)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + nodeColumns + `;`

	getNodeByID = `SELECT ` + nodeColumns + `
	FROM nodes
	WHERE node_type = $1 AND id = $2;`

	getNodeBySlug = `SELECT ` + nodeColumns + `
	FROM nodes
	WHERE node_type = $1 AND slug = $2;`

	updateNode = `UPDATE nodes
	SET slug = $1, data = $2, updated_at = NOW()
	WHERE node_type = $3 AND id = $4
	RETURNING ` + nodeColumns + `;`

	deleteNode = `DELETE FROM nodes
	WHERE node_type = $1 AND id = $2;`

	createUser = `INSERT INTO users (username, email, password_hash, role, is_active)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING user_id, username, email, password_hash, role, is_active, last_login, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, role, is_active, last_login, created_at
	FROM users
	WHERE username = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, role, is_active, last_login, created_at
	FROM users
	WHERE user_id = $1;`

	touchLastLogin = `UPDATE users
	SET last_login = NOW()
	WHERE user_id = $1;`
)
