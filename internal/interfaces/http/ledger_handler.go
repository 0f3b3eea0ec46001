package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// LedgerHandler movimientos contables: transacciones, pedidos estándar,
// liquidaciones de partenaires, salarios, entregas y depósitos bancarios.
type LedgerHandler struct {
	transactions *usecase.TransactionUseCase
	orders       *usecase.StandardOrderUseCase
	fees         *usecase.PartnerFeeUseCase
	salaries     *usecase.SalaryUseCase
	deliveries   *usecase.DeliveryUseCase
	deposits     *usecase.BankDepositUseCase
}

// LedgerUseCases casos de uso que atiende LedgerHandler.
type LedgerUseCases struct {
	Transactions   *usecase.TransactionUseCase
	StandardOrders *usecase.StandardOrderUseCase
	PartnerFees    *usecase.PartnerFeeUseCase
	Salaries       *usecase.SalaryUseCase
	Deliveries     *usecase.DeliveryUseCase
	BankDeposits   *usecase.BankDepositUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc LedgerUseCases) *LedgerHandler {
	return &LedgerHandler{
		transactions: uc.Transactions,
		orders:       uc.StandardOrders,
		fees:         uc.PartnerFees,
		salaries:     uc.Salaries,
		deliveries:   uc.Deliveries,
		deposits:     uc.BankDeposits,
	}
}

// ListTransactions GET /api/transactions
func (h *LedgerHandler) ListTransactions(c *fiber.Ctx) error {
	return respondList(c, h.transactions.List)
}

// CreateTransaction godoc
// @Summary      Registrar ingreso o gasto
// @Tags         accounting
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "type, amount, category, description, operation_date"
// @Success      201   {object}  entity.Transaction
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *LedgerHandler) CreateTransaction(c *fiber.Ctx) error {
	return respondCreate(c, func(in dto.TransactionRequest) (*entity.Transaction, error) {
		return h.transactions.Add(c.Context(), in)
	})
}

// UpdateTransaction PUT /api/transactions/:id
func (h *LedgerHandler) UpdateTransaction(c *fiber.Ctx) error {
	return respondUpdate(c, func(id string, in dto.TransactionRequest) error {
		return h.transactions.Update(c.Context(), id, in)
	})
}

// DeleteTransaction DELETE /api/transactions/:id
func (h *LedgerHandler) DeleteTransaction(c *fiber.Ctx) error {
	return respondDelete(c, func(id string) error {
		return h.transactions.Delete(c.Context(), id)
	})
}

// ListStandardOrders GET /api/standard-orders
func (h *LedgerHandler) ListStandardOrders(c *fiber.Ctx) error {
	return respondList(c, h.orders.List)
}

// CreateStandardOrder godoc
// @Summary      Registrar pedido estándar
// @Tags         accounting
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StandardOrderRequest  true  "Pedido"
// @Success      201   {object}  entity.StandardOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/standard-orders [post]
func (h *LedgerHandler) CreateStandardOrder(c *fiber.Ctx) error {
	return respondCreate(c, func(in dto.StandardOrderRequest) (*entity.StandardOrder, error) {
		return h.orders.Add(c.Context(), in)
	})
}

// UpdateStandardOrder PUT /api/standard-orders/:id
func (h *LedgerHandler) UpdateStandardOrder(c *fiber.Ctx) error {
	return respondUpdate(c, func(id string, in dto.StandardOrderRequest) error {
		return h.orders.Update(c.Context(), id, in)
	})
}

// DeleteStandardOrder DELETE /api/standard-orders/:id
func (h *LedgerHandler) DeleteStandardOrder(c *fiber.Ctx) error {
	return respondDelete(c, func(id string) error {
		return h.orders.Delete(c.Context(), id)
	})
}

// ListPartnerFees liquidaciones visibles (un partner solo ve las suyas).
// GET /api/partner-fees
func (h *LedgerHandler) ListPartnerFees(c *fiber.Ctx) error {
	g := GetGrant(c)
	return respondList(c, func() ([]*entity.PartnerDeliveryFee, error) {
		return h.fees.List(g)
	})
}

// CreatePartnerFee godoc
// @Summary      Registrar liquidación de partenaire
// @Tags         accounting
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartnerDeliveryFeeRequest  true  "Liquidación"
// @Success      201   {object}  entity.PartnerDeliveryFee
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/partner-fees [post]
func (h *LedgerHandler) CreatePartnerFee(c *fiber.Ctx) error {
	return respondCreate(c, func(in dto.PartnerDeliveryFeeRequest) (*entity.PartnerDeliveryFee, error) {
		return h.fees.Add(c.Context(), in)
	})
}

// UpdatePartnerFee PUT /api/partner-fees/:id
func (h *LedgerHandler) UpdatePartnerFee(c *fiber.Ctx) error {
	return respondUpdate(c, func(id string, in dto.PartnerDeliveryFeeRequest) error {
		return h.fees.Update(c.Context(), id, in)
	})
}

// DeletePartnerFee DELETE /api/partner-fees/:id
func (h *LedgerHandler) DeletePartnerFee(c *fiber.Ctx) error {
	return respondDelete(c, func(id string) error {
		return h.fees.Delete(c.Context(), id)
	})
}

// ListSalaries GET /api/salaries
func (h *LedgerHandler) ListSalaries(c *fiber.Ctx) error {
	return respondList(c, h.salaries.List)
}

// CreateSalary godoc
// @Summary      Registrar pago de salario
// @Description  Requiere user_id o beneficiary_name.
// @Tags         salaries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalaryRequest  true  "Pago"
// @Success      201   {object}  entity.Salary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/salaries [post]
func (h *LedgerHandler) CreateSalary(c *fiber.Ctx) error {
	return respondCreate(c, func(in dto.SalaryRequest) (*entity.Salary, error) {
		return h.salaries.Add(c.Context(), in)
	})
}

// UpdateSalary PUT /api/salaries/:id
func (h *LedgerHandler) UpdateSalary(c *fiber.Ctx) error {
	return respondUpdate(c, func(id string, in dto.SalaryRequest) error {
		return h.salaries.Update(c.Context(), id, in)
	})
}

// DeleteSalary DELETE /api/salaries/:id
func (h *LedgerHandler) DeleteSalary(c *fiber.Ctx) error {
	return respondDelete(c, func(id string) error {
		return h.salaries.Delete(c.Context(), id)
	})
}

// ListDeliveries GET /api/deliveries
func (h *LedgerHandler) ListDeliveries(c *fiber.Ctx) error {
	g := GetGrant(c)
	return respondList(c, func() ([]*entity.Delivery, error) {
		return h.deliveries.List(g)
	})
}

// CreateDelivery godoc
// @Summary      Registrar entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeliveryRequest  true  "Entrega"
// @Success      201   {object}  entity.Delivery
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
func (h *LedgerHandler) CreateDelivery(c *fiber.Ctx) error {
	g := GetGrant(c)
	return respondCreate(c, func(in dto.DeliveryRequest) (*entity.Delivery, error) {
		return h.deliveries.Add(c.Context(), g, in)
	})
}

// ListBankDeposits GET /api/bank-deposits
func (h *LedgerHandler) ListBankDeposits(c *fiber.Ctx) error {
	return respondList(c, h.deposits.List)
}

// CreateBankDeposit godoc
// @Summary      Registrar depósito bancario
// @Tags         accounting
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BankDepositRequest  true  "Depósito"
// @Success      201   {object}  entity.BankDeposit
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bank-deposits [post]
func (h *LedgerHandler) CreateBankDeposit(c *fiber.Ctx) error {
	g := GetGrant(c)
	return respondCreate(c, func(in dto.BankDepositRequest) (*entity.BankDeposit, error) {
		return h.deposits.Add(c.Context(), g, in)
	})
}

func respondList[T any](c *fiber.Ctx, list func() ([]*T, error)) error {
	out, err := list()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func respondCreate[Req any, Row any](c *fiber.Ctx, add func(Req) (*Row, error)) error {
	var in Req
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := add(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func respondUpdate[Req any](c *fiber.Ctx, update func(id string, in Req) error) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	var in Req
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	if err := update(id, in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondDelete(c *fiber.Ctx, del func(id string) error) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	if err := del(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
