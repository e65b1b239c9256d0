package dto

import "time"

// SaveVendorRequest input for creating or updating a vendor. Phone and address
// are optional and stored as NULL when absent.
type SaveVendorRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// VendorResponse output for a vendor.
type VendorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// VendorListResponse vendor list.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
}

// SaveWorkerRequest input for creating or updating a worker.
type SaveWorkerRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=200"`
	Phone *string `json:"phone"`
	Trade *string `json:"trade"`
}

// WorkerResponse output for a worker.
type WorkerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Trade     *string   `json:"trade"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkerListResponse worker list.
type WorkerListResponse struct {
	Items []WorkerResponse `json:"items"`
}
