package service

import (
	"context"

	"github.com/Leganyst/restaurant-staff/internal/model"
)

const defaultPageSize = 10

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T // элементы на текущей странице
	Page     int // номер страницы (с 1)
	PageSize int
	HasNext  bool
	HasPrev  bool
	Total    int64 // всего строк в таблице
}

// pageWindow normalizes page/pageSize and returns the matching limit and
// offset. page нумеруется с 1; некорректные значения заменяются дефолтами.
func pageWindow(page, pageSize int) (int, int, int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return page, pageSize, (page - 1) * pageSize
}

func newPage[T any](items []T, page, pageSize int, total int64) Page[T] {
	end := int64((page-1)*pageSize + len(items))
	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasNext:  end < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}

// CooksPage returns one page of cooks ordered by id.
func (s *StaffService) CooksPage(ctx context.Context, page, pageSize int) (Page[model.Cook], error) {
	page, pageSize, offset := pageWindow(page, pageSize)

	cooks, total, err := s.cookRepo.List(ctx, pageSize, offset)
	if err != nil {
		return Page[model.Cook]{}, err
	}
	return newPage(cooks, page, pageSize, total), nil
}
