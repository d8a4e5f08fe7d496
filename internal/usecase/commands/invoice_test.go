//go:build unit

package commands_test

import (
	"testing"

	"rental-core/internal/domain/invoice"
	"rental-core/internal/domain/user"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InvoiceCommandsTestSuite struct {
	rentalSuite
}

func TestInvoiceCommandsSuite(t *testing.T) {
	suite.Run(t, new(InvoiceCommandsTestSuite))
}

func (s *InvoiceCommandsTestSuite) TestCreateFromOrder() {
	s.Run("error: quotations are not invoiced", func() {
		id := s.cartFor(s.customer, 1)
		_, err := s.invoices.CreateFromOrder(s.ctx, s.customer, id)
		s.ErrorIs(err, invoice.ErrOrderNotInvoiceable)
	})

	s.Run("error: unknown order", func() {
		_, err := s.invoices.CreateFromOrder(s.ctx, s.vendor, uuid.New())
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}

func (s *InvoiceCommandsTestSuite) TestPost() {
	orderID := s.confirmedOrder()
	inv := s.store.InvoiceByOrder(orderID)
	s.Require().NotNil(inv)

	s.Run("success: existing draft is returned, not duplicated", func() {
		res, err := s.invoices.CreateFromOrder(s.ctx, s.customer, orderID)
		s.Require().NoError(err)
		s.False(res.Created)
		s.Equal(inv.ID(), res.InvoiceID)
		s.Equal(invoice.StatusDraft, res.Status)
	})

	s.Run("error: customers cannot post", func() {
		_, err := s.invoices.Post(s.ctx, s.customer, inv.ID())
		s.ErrorIs(err, commands.ErrVendorOnly)
	})

	s.Run("error: another vendor's invoice", func() {
		other := shared.Actor{ID: uuid.New(), Role: user.RoleVendor}
		_, err := s.invoices.Post(s.ctx, other, inv.ID())
		s.ErrorIs(err, commands.ErrInvoiceForbidden)
	})

	s.Run("success: draft posted", func() {
		res, err := s.invoices.Post(s.ctx, s.vendor, inv.ID())
		s.Require().NoError(err)
		s.Equal(invoice.StatusPosted, res.Status)
		s.NotNil(s.store.InvoiceByOrder(orderID).PostedAt())
	})

	s.Run("error: posting twice", func() {
		_, err := s.invoices.Post(s.ctx, s.vendor, inv.ID())
		s.ErrorIs(err, invoice.ErrNotDraft)
	})

	s.Run("success: posted invoice is left as issued", func() {
		res, err := s.invoices.CreateFromOrder(s.ctx, s.vendor, orderID)
		s.Require().NoError(err)
		s.Equal(invoice.StatusPosted, res.Status)
		s.False(res.Created)
	})
}
