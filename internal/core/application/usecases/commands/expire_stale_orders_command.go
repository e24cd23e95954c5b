package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
		"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
	)
)

// ExpireStaleOrdersCommand cancels orders that have been sitting in
// "available" status longer than the given time-to-live without any delivery
// partner confirming them.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire stale orders.
// The TTL must be positive.
func NewExpireStaleOrdersCommand(ttl time.Duration) (ExpireStaleOrdersCommand, error) {
	expireCommand := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setTTL(ttl); err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long an order may stay available before it expires.
func (c ExpireStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c *ExpireStaleOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ttl is invalid",
			fmt.Errorf("%s is not greater than 0", ttl))
	}

	c.ttl = ttl
	return nil
}
