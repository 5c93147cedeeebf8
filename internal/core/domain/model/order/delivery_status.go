package order

import (
	"fmt"

	"bookshop/internal/pkg/errs"
)

// DeliveryStatus represents the shipping state of an order's delivery.
//
//	Ready ──> Completed
type DeliveryStatus int

const (
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryReady means the parcel has not left yet; the order may still be cancelled.
	DeliveryReady

	// DeliveryCompleted means the parcel was handed over; the order is final.
	DeliveryCompleted
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "Unknown",
		DeliveryReady:     "Ready",
		DeliveryCompleted: "Completed",
	}
}

func (s DeliveryStatus) Validate() error {
	if s != DeliveryReady && s != DeliveryCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s DeliveryStatus) IsCompleted() bool {
	return s == DeliveryCompleted
}

// Complete transitions Ready -> Completed.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != DeliveryReady {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid delivery status to complete", s.String()),
		)
	}
	return DeliveryCompleted, nil
}
