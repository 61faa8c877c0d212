package service

import (
	"time"

	"github.com/dwlab/visitor-pass-service/internal/util"
)

// RealClock — production Clock
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// UUIDTransactionIDs — TransactionIDs adapter over internal/util
type UUIDTransactionIDs struct{}

func (UUIDTransactionIDs) New() string { return util.NewTransactionID() }
