package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"staybook/internal/domain"
)

// Repo implements the hotel, user and booking repositories over one pool.
type Repo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// mapErr translates driver errors into the domain's sentinels so the layers
// above never see a pgconn type.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "users_email"):
			return domain.ErrEmailTaken
		case strings.Contains(pgErr.ConstraintName, "rooms_hotel_id_number"):
			return domain.ErrRoomTaken
		}
	}
	return err
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	_, err := r.pool.Exec(ctx, insertHotelSQL,
		h.ID, h.Name, h.PhoneNumber, h.Email, h.Address, h.City, h.Country,
		h.CreatedAt, h.LastModifiedAt)
	return mapErr(err)
}

func (r *Repo) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	return scanHotel(r.pool.QueryRow(ctx, getHotelSQL, id))
}

func (r *Repo) ListHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	rows, err := r.pool.Query(ctx, listHotelsSQL, limit)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, mapErr(rows.Err())
}

func (r *Repo) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) (*domain.Hotel, error) {
	return scanHotel(r.pool.QueryRow(ctx, updateHotelSQL,
		id, p.Name, p.PhoneNumber, p.Email, p.Address, p.City, p.Country))
}

func (r *Repo) DeleteHotel(ctx context.Context, id string) error {
	return r.deleteOne(ctx, deleteHotelSQL, id)
}

// ---- rooms ----

func (r *Repo) CreateRoom(ctx context.Context, room *domain.Room) error {
	_, err := r.pool.Exec(ctx, insertRoomSQL,
		room.ID, room.HotelID, room.Number, room.Size, room.PriceCents)
	return mapErr(err)
}

func (r *Repo) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return scanRoom(r.pool.QueryRow(ctx, getRoomSQL, id))
}

func (r *Repo) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	rows, err := r.pool.Query(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *room)
	}
	return out, mapErr(rows.Err())
}

func (r *Repo) UpdateRoom(ctx context.Context, id string, p domain.RoomPatch) (*domain.Room, error) {
	return scanRoom(r.pool.QueryRow(ctx, updateRoomSQL, id, p.Number, p.Size, p.PriceCents))
}

func (r *Repo) DeleteRoom(ctx context.Context, id string) error {
	return r.deleteOne(ctx, deleteRoomSQL, id)
}

// ---- users ----

func (r *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, insertUserSQL,
		u.ID, u.Name, u.Surname, u.Email, u.PhoneNumber, u.Status,
		u.CreatedAt, u.LastModifiedAt)
	return mapErr(err)
}

func (r *Repo) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, getUserSQL, id))
}

func (r *Repo) UpdateUser(ctx context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, updateUserSQL,
		id, p.Name, p.Surname, p.PhoneNumber, p.Status))
}

func (r *Repo) DeleteUser(ctx context.Context, id string) error {
	return r.deleteOne(ctx, deleteUserSQL, id)
}

// ---- bookings ----

func (r *Repo) CreateBooking(ctx context.Context, b *domain.Booking) error {
	_, err := r.pool.Exec(ctx, insertBookingSQL,
		b.ID, b.GuestID, b.RoomID, b.Period.StartDate, b.Period.EndDate,
		b.Status, b.CreatedAt, b.LastModifiedAt)
	return mapErr(err)
}

func (r *Repo) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return scanBooking(r.pool.QueryRow(ctx, getBookingSQL, id))
}

func (r *Repo) ListActiveByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx, listActiveByRoomSQL, roomID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, mapErr(rows.Err())
}

func (r *Repo) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	return scanBooking(r.pool.QueryRow(ctx, updateBookingStatusSQL, id, status))
}

func (r *Repo) DeleteBooking(ctx context.Context, id string) error {
	return r.deleteOne(ctx, deleteBookingSQL, id)
}

// ---- scanning ----

func (r *Repo) deleteOne(ctx context.Context, sql, id string) error {
	tag, err := r.pool.Exec(ctx, sql, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanHotel(row pgx.Row) (*domain.Hotel, error) {
	var h domain.Hotel
	err := row.Scan(&h.ID, &h.Name, &h.PhoneNumber, &h.Email, &h.Address,
		&h.City, &h.Country, &h.CreatedAt, &h.LastModifiedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &h, nil
}

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(&room.ID, &room.HotelID, &room.Number, &room.Size, &room.PriceCents)
	if err != nil {
		return nil, mapErr(err)
	}
	return &room, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PhoneNumber,
		&u.Status, &u.CreatedAt, &u.LastModifiedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.GuestID, &b.RoomID, &b.Period.StartDate,
		&b.Period.EndDate, &b.Status, &b.CreatedAt, &b.LastModifiedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}
