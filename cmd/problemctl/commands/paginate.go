package commands

import (
	"log/slog"

	"github.com/ib-77/railway/pkg/rop/paging"
)

// PaginateCmd implements the 'paginate' command. A positive --page selects
// the page-number form; otherwise --skip is used.
type PaginateCmd struct {
	Total int `short:"t" help:"Total number of items" required:""`
	Skip  int `short:"s" help:"Offset of the first item"`
	Take  int `short:"n" help:"Requested page size; 0 uses the configured default"`
	Page  int `short:"p" help:"1-based page number"`
}

type pageView struct {
	PageNumber  int  `json:"pageNumber" yaml:"pageNumber"`
	PageSize    int  `json:"pageSize" yaml:"pageSize"`
	TotalItems  int  `json:"totalItems" yaml:"totalItems"`
	TotalPages  int  `json:"totalPages" yaml:"totalPages"`
	Skip        int  `json:"skip" yaml:"skip"`
	HasNext     bool `json:"hasNextPage" yaml:"hasNextPage"`
	HasPrevious bool `json:"hasPreviousPage" yaml:"hasPreviousPage"`
}

func (c *PaginateCmd) Run(g *Global, root *CLI) error {
	opts, err := root.PagingOptions()
	if err != nil {
		return err
	}

	var page paging.Page
	if c.Page > 0 {
		page = paging.ForPage(c.Total, c.Page, c.Take, opts)
	} else {
		page = paging.Calculate(c.Total, c.Skip, c.Take, opts)
	}
	slog.Debug("Page computed", "total", c.Total, "size", page.Size, "number", page.Number)

	return encode(g.Out, root.Format, pageView{
		PageNumber:  page.Number,
		PageSize:    page.Size,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		Skip:        page.Skip(),
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	})
}
