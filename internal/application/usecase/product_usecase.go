package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// ProductUseCase crea productos con su inventario inicial de forma
// transaccional y los consulta por ID.
type ProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create valida la entrada y persiste producto, nivel de inventario y la
// entrada "initial_stock" del ledger en una sola transacción. Toda la
// validación ocurre antes de cualquier escritura; un SKU duplicado devuelve
// domain.ErrDuplicate (la constraint única de la BD es el único punto de
// serialización entre peticiones concurrentes con el mismo SKU).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	if name == "" || sku == "" {
		return nil, domain.ErrInvalidInput
	}
	// price es requerido: un CreateProductRequest sin el campo llega con nil
	// y se rechaza, no se confunde con un precio 0 explícito.
	if in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	// price: decimal no negativo con a lo sumo 2 dígitos fraccionarios
	if in.Price.IsNegative() || in.Price.Exponent() < -2 {
		return nil, domain.ErrInvalidInput
	}
	if in.WarehouseID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	qty := int64(0)
	if in.InitialQuantity != nil {
		if *in.InitialQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		qty = *in.InitialQuantity
	}

	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	var (
		product *entity.Product
		level   *entity.Inventory
	)
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error {
		p := &entity.Product{
			SKU:         sku,
			Name:        name,
			Price:       *in.Price,
			ProductType: entity.ProductTypeStandard,
			Active:      true,
		}
		if err := productRepo.Create(p); err != nil {
			return err
		}
		inv := &entity.Inventory{
			ProductID:   p.ID,
			WarehouseID: wh.ID,
			Quantity:    qty,
			SafetyStock: 0,
		}
		if err := inventoryRepo.Create(inv); err != nil {
			return err
		}
		refID := p.ID
		change := &entity.InventoryChange{
			ProductID:     p.ID,
			WarehouseID:   wh.ID,
			QuantityDelta: qty,
			Reason:        entity.ChangeReasonInitialStock,
			RefType:       entity.ChangeRefProduct,
			RefID:         &refID,
			ChangedAt:     time.Now().UTC(),
		}
		if err := changeRepo.Create(change); err != nil {
			return err
		}
		product = p
		level = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message:   "Producto creado",
		Product:   *toProductResponse(product),
		Inventory: dto.InventoryResponse{WarehouseID: level.WarehouseID, Quantity: level.Quantity, SafetyStock: level.SafetyStock},
	}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price,
		ProductType: p.ProductType,
		Active:      p.Active,
	}
}
