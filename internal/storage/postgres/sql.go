package postgres

const insertHotelSQL = `
INSERT INTO hotels
  (id, name, phone_number, email, address, city, country, created_at, last_modified_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

const getHotelSQL = `
SELECT id, name, phone_number, email, address, city, country, created_at, last_modified_at
FROM hotels
WHERE id = $1
`

const listHotelsSQL = `
SELECT id, name, phone_number, email, address, city, country, created_at, last_modified_at
FROM hotels
ORDER BY created_at, id
LIMIT $1
`

// COALESCE keeps the stored value where the patch field is NULL, so one
// statement serves every combination of patched fields.
const updateHotelSQL = `
UPDATE hotels SET
  name             = COALESCE($2, name),
  phone_number     = COALESCE($3, phone_number),
  email            = COALESCE($4, email),
  address          = COALESCE($5, address),
  city             = COALESCE($6, city),
  country          = COALESCE($7, country),
  last_modified_at = now()
WHERE id = $1
RETURNING id, name, phone_number, email, address, city, country, created_at, last_modified_at
`

const deleteHotelSQL = `DELETE FROM hotels WHERE id = $1`

const insertRoomSQL = `
INSERT INTO rooms (id, hotel_id, number, size, price_cents)
VALUES ($1, $2, $3, $4, $5)
`

const getRoomSQL = `
SELECT id, hotel_id, number, size, price_cents
FROM rooms
WHERE id = $1
`

const listRoomsSQL = `
SELECT id, hotel_id, number, size, price_cents
FROM rooms
WHERE hotel_id = $1
ORDER BY number
`

const updateRoomSQL = `
UPDATE rooms SET
  number      = COALESCE($2, number),
  size        = COALESCE($3, size),
  price_cents = COALESCE($4, price_cents)
WHERE id = $1
RETURNING id, hotel_id, number, size, price_cents
`

const deleteRoomSQL = `DELETE FROM rooms WHERE id = $1`

const insertUserSQL = `
INSERT INTO users
  (id, name, surname, email, phone_number, status, created_at, last_modified_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8)
`

const getUserSQL = `
SELECT id, name, surname, email, phone_number, status, created_at, last_modified_at
FROM users
WHERE id = $1
`

const updateUserSQL = `
UPDATE users SET
  name             = COALESCE($2, name),
  surname          = COALESCE($3, surname),
  phone_number     = COALESCE($4, phone_number),
  status           = COALESCE($5, status),
  last_modified_at = now()
WHERE id = $1
RETURNING id, name, surname, email, phone_number, status, created_at, last_modified_at
`

const deleteUserSQL = `DELETE FROM users WHERE id = $1`

const insertBookingSQL = `
INSERT INTO bookings
  (id, guest_id, room_id, start_date, end_date, status, created_at, last_modified_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8)
`

const getBookingSQL = `
SELECT id, guest_id, room_id, start_date, end_date, status, created_at, last_modified_at
FROM bookings
WHERE id = $1
`

const listActiveByRoomSQL = `
SELECT id, guest_id, room_id, start_date, end_date, status, created_at, last_modified_at
FROM bookings
WHERE room_id = $1 AND status IN ('pending', 'confirmed')
ORDER BY start_date
`

const updateBookingStatusSQL = `
UPDATE bookings SET
  status           = $2,
  last_modified_at = now()
WHERE id = $1
RETURNING id, guest_id, room_id, start_date, end_date, status, created_at, last_modified_at
`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`
