package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/gestfinance-api/internal/application/inventory"
	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	domaininv "github.com/jhoicas/gestfinance-api/internal/domain/inventory"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/records"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/sqlite"
)

type outboundTestContext struct {
	f   *fixture
	db  *gorm.DB
	err error
}

func (c *outboundTestContext) reset() error {
	db, err := sqlite.Open(":memory:", nil)
	if err != nil {
		return err
	}
	c.db = db
	repos := records.NewRepositories(sqlite.NewRecordStore(db))
	c.f = &fixture{repos: repos, uc: inventory.NewOutboundUseCase(sqlite.NewTxRunner(db), repos, nil)}
	c.err = nil
	return nil
}

func (c *outboundTestContext) aProduct(code, name string, qty int, price, discount string) error {
	p := &entity.Product{
		ID:           "id-" + code,
		Code:         code,
		Name:         name,
		PurchasedQty: decimal.NewFromInt(int64(qty)),
		UnitPrice:    decimal.RequireFromString(price),
		Discount:     decimal.RequireFromString(discount),
	}
	if err := domaininv.ApplyLedger(p); err != nil {
		return err
	}
	return c.f.repos.Products.Create(context.Background(), p)
}

func (c *outboundTestContext) registeredDescription(name string) error {
	ctx := context.Background()
	reg, err := c.f.repos.Registry.Get(ctx)
	if err != nil {
		return err
	}
	reg.Descriptions = append(reg.Descriptions, name)
	return c.f.repos.Registry.Save(ctx, reg)
}

func (c *outboundTestContext) iShip(qty int, code, origin, destination string) error {
	_, c.err = c.f.uc.Process(context.Background(), inventory.OutboundInput{
		Date:        "2024-04-02",
		Origin:      origin,
		Destination: destination,
		ProductCode: code,
		Quantity:    decimal.NewFromInt(int64(qty)),
	})
	return nil
}

func (c *outboundTestContext) theOperationSucceeds() error {
	return c.err
}

func (c *outboundTestContext) theOperationFailsWithMissingEntry(name string) error {
	var missing *domain.MissingRegistryEntryError
	if !errors.As(c.err, &missing) {
		return fmt.Errorf("se esperaba MissingRegistryEntryError, obtenido %v", c.err)
	}
	if missing.ProductName != name {
		return fmt.Errorf("producto %q, esperado %q", missing.ProductName, name)
	}
	return nil
}

func (c *outboundTestContext) product(code string) (*entity.Product, error) {
	p, err := c.f.repos.Products.GetByCode(context.Background(), code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %s no encontrado", code)
	}
	return p, nil
}

func expectDecimal(field string, got decimal.Decimal, want string) error {
	if !got.Equal(decimal.RequireFromString(want)) {
		return fmt.Errorf("%s = %s, esperado %s", field, got, want)
	}
	return nil
}

func (c *outboundTestContext) productPrices(code, total, unitDiscount, discountedUnit, discountedTotal string) error {
	p, err := c.product(code)
	if err != nil {
		return err
	}
	return errors.Join(
		expectDecimal("valorTotal", p.TotalPrice, total),
		expectDecimal("descontoUnitario", p.UnitDiscount, unitDiscount),
		expectDecimal("unidadeComDesconto", p.DiscountedUnitPrice, discountedUnit),
		expectDecimal("valorTotalComDesconto", p.DiscountedTotal, discountedTotal),
	)
}

func (c *outboundTestContext) productStock(code, shipped, remaining, shippedValue, remainingValue string) error {
	p, err := c.product(code)
	if err != nil {
		return err
	}
	return errors.Join(
		expectDecimal("quantidadeSaiu", p.ShippedQty, shipped),
		expectDecimal("quantidadeEstoque", p.RemainingQty, remaining),
		expectDecimal("valorTotalSaiu", p.ShippedValue, shippedValue),
		expectDecimal("valorTotalEstoque", p.RemainingValue, remainingValue),
	)
}

func (c *outboundTestContext) productStatus(code, status string) error {
	p, err := c.product(code)
	if err != nil {
		return err
	}
	if p.Status != status {
		return fmt.Errorf("situacao = %q, esperado %q", p.Status, status)
	}
	return nil
}

func (c *outboundTestContext) transactionExists(category, value, description string) error {
	txs, err := c.f.repos.Transactions.List(context.Background())
	if err != nil {
		return err
	}
	for _, t := range txs {
		if t.Category == category && t.Description == description && t.Value.Equal(decimal.RequireFromString(value)) {
			return nil
		}
	}
	return fmt.Errorf("no hay transacción %s de %s para %s", category, value, description)
}

func (c *outboundTestContext) noTransactionExists() error {
	txs, err := c.f.repos.Transactions.List(context.Background())
	if err != nil {
		return err
	}
	if len(txs) != 0 {
		return fmt.Errorf("se esperaban 0 transacciones, hay %d", len(txs))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &outboundTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, sqlite.Close(tc.db)
	})

	// Given
	ctx.Step(`^a product "([^"]*)" named "([^"]*)" with (\d+) units at ([\d.]+) and discount ([\d.]+)$`, tc.aProduct)
	ctx.Step(`^"([^"]*)" is a registered description$`, tc.registeredDescription)

	// When
	ctx.Step(`^I ship (\d+) units of "([^"]*)" from "([^"]*)" to "([^"]*)"$`, tc.iShip)

	// Then
	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with a missing registry entry for "([^"]*)"$`, tc.theOperationFailsWithMissingEntry)
	ctx.Step(`^the product "([^"]*)" has total ([\d.]+), unit discount ([\d.]+), discounted unit price ([\d.]+) and discounted total ([\d.]+)$`, tc.productPrices)
	ctx.Step(`^the product "([^"]*)" has ([\d.]+) shipped, ([\d.]+) remaining, shipped value ([\d.]+) and remaining value ([\d.]+)$`, tc.productStock)
	ctx.Step(`^the product "([^"]*)" status is "([^"]*)"$`, tc.productStatus)
	ctx.Step(`^a "([^"]*)" transaction of value ([\d.]+) exists for "([^"]*)"$`, tc.transactionExists)
	ctx.Step(`^no transaction exists$`, tc.noTransactionExists)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/outbound_movement.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
