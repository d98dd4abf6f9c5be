package repository

const (
	selectRequest = `SELECT
		id,
		sender_id,
		recipient_id,
		amount,
		currency,
		description,
		status,
		expires_at,
		paid_at,
		transaction_id,
		created_at,
		updated_at
	FROM payment_requests`

	selectVoucher = `SELECT
		id,
		code,
		creator_id,
		amount,
		currency,
		status,
		pin_hash,
		expires_at,
		redeemed_at,
		redeemed_by,
		created_at,
		updated_at
	FROM vouchers`
)
