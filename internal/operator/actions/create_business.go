package actions

import (
	"context"

	"github.com/hustler-ledger/ledger-server/internal/storage"
	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

type CreateBusiness struct {
	Business sqlconfig.BusinessCreate

	Created *sqlconfig.Business
	IAction
}

func (c *CreateBusiness) Perform(ctx context.Context, writer *storage.Writer) error {
	business, err := writer.Businesses.Insert(ctx, &c.Business)
	if err != nil {
		return err
	}

	c.Created = business
	return nil
}
