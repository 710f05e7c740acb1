package service

import (
	"database/sql"
	"errors"

	"github.com/avelichko/chequeroom/internal/database"
	"github.com/avelichko/chequeroom/internal/types"
)

// AddProduct creates a line item on an existing cheque. Products have no
// owner of their own; the cheque owner controls them.
func (s *Service) AddProduct(chequeId int, name string, price, count int) (database.Product, error) {
	cheque, err := s.db.GetChequeById(chequeId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Product{}, ErrChequeNotFound
		}
		return database.Product{}, err
	}

	return s.db.CreateProduct(name, price, count, cheque.Id)
}

func (s *Service) DeleteProduct(productId, requesterId int) error {
	product, err := s.db.GetProductById(productId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}

	cheque, err := s.db.GetChequeById(product.ChequeId)
	if err != nil {
		return err
	}

	if cheque.OwnerId != requesterId {
		return ErrNotOwner
	}

	return s.db.DeleteProduct(product.Id)
}

// JoinProduct records that the user claims a share of the item. Unlike
// rooms and cheques there is no owner role to exclude: the cheque owner
// claims items like anyone else.
func (s *Service) JoinProduct(productId, chequeId, userId int) error {
	product, err := s.db.GetProductById(productId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}
	if product.ChequeId != chequeId {
		return ErrProductNotFound
	}

	if err := s.db.CreateProductMember(userId, product.Id); err != nil {
		if errors.Is(err, database.ErrAlreadyExists) {
			return ErrAlreadyMember
		}
		return err
	}

	return nil
}

func (s *Service) LeaveProduct(productId, userId int) error {
	if _, err := s.db.GetProductById(productId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.db.DeleteProductMember(userId, productId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotMember
		}
		return err
	}

	return nil
}

func (s *Service) ProductsInCheque(chequeId int) ([]types.ProductView, error) {
	if _, err := s.db.GetChequeById(chequeId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChequeNotFound
		}
		return nil, err
	}

	products, err := s.db.ListProducts(chequeId)
	if err != nil {
		return nil, err
	}

	views := make([]types.ProductView, 0, len(products))
	for _, product := range products {
		view, err := s.ProductView(product)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}
