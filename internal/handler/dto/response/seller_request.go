package response

import (
	"time"

	"book-courier/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SellerRequestResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSellerRequestList(views []*queries.SellerRequestView) []*SellerRequestResponse {
	res := make([]*SellerRequestResponse, 0, len(views))
	_ = copier.Copy(&res, &views)
	return res
}

type SellerRequestStatusResponse struct {
	Pending bool `json:"pending"`
}
