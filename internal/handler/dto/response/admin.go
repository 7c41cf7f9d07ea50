package response

import (
	"gin-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type StatsResponse struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalUsers    int64   `json:"totalUsers"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

func FromStatsView(v *queries.StatsView) (StatsResponse, error) {
	var res StatsResponse
	if err := copier.CopyWithOption(&res, v, copyOption); err != nil {
		return StatsResponse{}, err
	}
	return res, nil
}
