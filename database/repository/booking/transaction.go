package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookwise/models"
)

// ErrOverlap is returned when the guarded write path finds a conflicting
// active booking on the same staff/interval.
var ErrOverlap = errors.New("booking overlaps an existing booking")

// overlapFilter matches active bookings on the staff/date whose raw interval
// intersects [start, end). Buffer separation is enforced by the slot
// validation upstream; the raw-interval overlap is the hard invariant the
// write path re-checks.
func overlapFilter(staffID, date string, start, end int, excludeGroup string) bson.M {
	filter := bson.M{
		"staffId": staffID,
		"date":    date,
		"status":  bson.M{"$nin": bson.A{models.BookingCancelled, models.BookingNoShow}},
		"start":   bson.M{"$lt": end},
		"end":     bson.M{"$gt": start},
	}
	if excludeGroup != "" {
		filter["groupId"] = bson.M{"$ne": excludeGroup}
	}
	return filter
}

func (repo *mongoBookingRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// InsertGuarded inserts the booking after re-counting overlapping active
// bookings inside the same transaction. Two concurrent attempts on the same
// interval therefore serialize here rather than double-booking.
func (repo *mongoBookingRepo) InsertGuarded(ctx context.Context, booking *models.Booking, buffer int) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := overlapFilter(booking.StaffID, booking.Date, booking.Start, booking.End+buffer, "")
		n, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-count failed: %w", err)
		}
		if n > 0 {
			return ErrOverlap
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// UpdateTimesGuarded rewrites one booking's date and interval with the same
// overlap re-count, excluding the booking itself (and its group, if any).
func (repo *mongoBookingRepo) UpdateTimesGuarded(ctx context.Context, booking *models.Booking, buffer int) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := overlapFilter(booking.StaffID, booking.Date, booking.Start, booking.End+buffer, booking.GroupID)
		filter["id"] = bson.M{"$ne": booking.ID}
		n, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-count failed: %w", err)
		}
		if n > 0 {
			return ErrOverlap
		}

		update := bson.M{"$set": bson.M{
			"date":      booking.Date,
			"start":     booking.Start,
			"end":       booking.End,
			"updatedAt": time.Now(),
		}}
		res, err := repo.coll.UpdateOne(sc, bson.M{"id": booking.ID}, update)
		if err != nil {
			return fmt.Errorf("update booking times failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not found", booking.ID)
		}
		return nil
	})
}

// UpdateGroupTimes rewrites every member's timestamps atomically once the
// combined slot has been confirmed available.
func (repo *mongoBookingRepo) UpdateGroupTimes(ctx context.Context, groupID, date string, starts map[string]models.Interval) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		for bookingID, iv := range starts {
			update := bson.M{"$set": bson.M{
				"date":      date,
				"start":     iv.Start,
				"end":       iv.End,
				"updatedAt": time.Now(),
			}}
			res, err := repo.coll.UpdateOne(sc, bson.M{"id": bookingID, "groupId": groupID}, update)
			if err != nil {
				return fmt.Errorf("update group member %s failed: %w", bookingID, err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("group member %s not found in group %s", bookingID, groupID)
			}
		}
		return nil
	})
}
