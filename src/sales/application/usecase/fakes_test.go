package usecase

import (
	"context"

	catalogEntity "supermercado/src/catalog/domain/entity"
	"supermercado/src/sales/domain/entity"
	"supermercado/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// Fakes en memoria de los puertos, para probar los casos de uso sin base
// de datos.

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (f *fakeSaleRepo) Save(ctx context.Context, sale *entity.Sale) error {
	stored := *sale
	stored.Items = append([]entity.SaleItem(nil), sale.Items...)
	f.sales[sale.ID] = &stored
	return nil
}

func (f *fakeSaleRepo) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	stored, ok := f.sales[saleID]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	sale := *stored
	sale.Items = append([]entity.SaleItem(nil), stored.Items...)
	return &sale, nil
}

func (f *fakeSaleRepo) FindByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	for _, stored := range f.sales {
		if stored.BranchID == branchID {
			sale := *stored
			sales = append(sales, &sale)
		}
	}
	return sales, nil
}

func (f *fakeSaleRepo) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	for _, stored := range f.sales {
		sale := *stored
		sales = append(sales, &sale)
	}
	return sales, nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, saleID uuid.UUID) error {
	if _, ok := f.sales[saleID]; !ok {
		return entity.ErrSaleNotFound
	}
	delete(f.sales, saleID)
	return nil
}

type fakeBranchRepo struct {
	branches map[uuid.UUID]*catalogEntity.Branch
}

func newFakeBranchRepo(branches ...*catalogEntity.Branch) *fakeBranchRepo {
	repo := &fakeBranchRepo{branches: make(map[uuid.UUID]*catalogEntity.Branch)}
	for _, branch := range branches {
		repo.branches[branch.ID] = branch
	}
	return repo
}

func (f *fakeBranchRepo) Create(ctx context.Context, branch *catalogEntity.Branch) error {
	f.branches[branch.ID] = branch
	return nil
}

func (f *fakeBranchRepo) Update(ctx context.Context, branch *catalogEntity.Branch) error {
	if _, ok := f.branches[branch.ID]; !ok {
		return catalogEntity.ErrBranchNotFound
	}
	f.branches[branch.ID] = branch
	return nil
}

func (f *fakeBranchRepo) FindByID(ctx context.Context, branchID uuid.UUID) (*catalogEntity.Branch, error) {
	branch, ok := f.branches[branchID]
	if !ok {
		return nil, catalogEntity.ErrBranchNotFound
	}
	return branch, nil
}

func (f *fakeBranchRepo) FindAll(ctx context.Context) ([]*catalogEntity.Branch, error) {
	var branches []*catalogEntity.Branch
	for _, branch := range f.branches {
		branches = append(branches, branch)
	}
	return branches, nil
}

func (f *fakeBranchRepo) Delete(ctx context.Context, branchID uuid.UUID) error {
	if _, ok := f.branches[branchID]; !ok {
		return catalogEntity.ErrBranchNotFound
	}
	delete(f.branches, branchID)
	return nil
}

type fakeProductRepo struct {
	products map[string]*catalogEntity.Product
}

func newFakeProductRepo(products ...*catalogEntity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*catalogEntity.Product)}
	for _, product := range products {
		repo.products[product.Name] = product
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, product *catalogEntity.Product) error {
	f.products[product.Name] = product
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *catalogEntity.Product) error {
	f.products[product.Name] = product
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, productID uuid.UUID) (*catalogEntity.Product, error) {
	for _, product := range f.products {
		if product.ID == productID {
			return product, nil
		}
	}
	return nil, catalogEntity.ErrProductNotFound
}

func (f *fakeProductRepo) FindByName(ctx context.Context, name string) (*catalogEntity.Product, error) {
	product, ok := f.products[name]
	if !ok {
		return nil, catalogEntity.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*catalogEntity.Product, error) {
	var products []*catalogEntity.Product
	for _, product := range f.products {
		products = append(products, product)
	}
	return products, nil
}

func (f *fakeProductRepo) SearchByCriteria(ctx context.Context, crit criteria.Criteria) ([]*catalogEntity.Product, error) {
	return f.FindAll(ctx)
}

func (f *fakeProductRepo) Delete(ctx context.Context, productID uuid.UUID) error {
	for name, product := range f.products {
		if product.ID == productID {
			delete(f.products, name)
			return nil
		}
	}
	return catalogEntity.ErrProductNotFound
}
