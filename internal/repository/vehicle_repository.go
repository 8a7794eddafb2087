package repository

import (
	"context"
	"database/sql"

	"github.com/drivelane/dealership/internal/model"
)

// VehicleListParams carries the filter, sort and pagination inputs for the
// list procedure.  Nil pointers mean "not set" and are forwarded to the
// store as NULL; the remaining defaults (featuredOnly=0, sortBy=dateCreated,
// sortOrder=DESC, page=1, pageSize=20) are applied here so the procedure
// always receives a complete parameter list.
type VehicleListParams struct {
	IDBrand        *int64
	IDFuelType     *int64
	IDTransmission *int64
	IDColor        *int64
	YearMin        *int
	YearMax        *int
	PriceMin       *float64
	PriceMax       *float64
	FeaturedOnly   bool
	SortBy         string
	SortOrder      string
	Page           int
	PageSize       int
}

// VehicleStore is the read side of the catalog.  The concrete implementation
// calls stored procedures; tests substitute mocks.
type VehicleStore interface {
	List(ctx context.Context, p VehicleListParams) ([]model.VehicleListItem, int, error)
	Get(ctx context.Context, idVehicle int64) (*model.VehicleDetail, []model.VehicleImage, error)
}

// VehicleRepo invokes the vehicle stored procedures.  Filtering, sorting and
// pagination all happen inside the store; this type only assembles
// parameters and scans result sets.
type VehicleRepo struct {
	db *sql.DB
}

// NewVehicleRepo constructs a VehicleRepo with the given DB handle.
func NewVehicleRepo(db *sql.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// List calls sp_vehicle_list and returns the matching page of vehicles plus
// the total match count.  The procedure emits two result sets: the rows
// (already filtered, sorted and paginated) and a single-row total.  A
// missing or empty count set is treated as total 0.
func (r *VehicleRepo) List(ctx context.Context, p VehicleListParams) ([]model.VehicleListItem, int, error) {
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "dateCreated"
	}
	sortOrder := p.SortOrder
	if sortOrder == "" {
		sortOrder = "DESC"
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	featured := 0
	if p.FeaturedOnly {
		featured = 1
	}

	const q = `CALL sp_vehicle_list(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	rows, err := r.db.QueryContext(ctx, q,
		p.IDBrand, p.IDFuelType, p.IDTransmission, p.IDColor,
		p.YearMin, p.YearMax, p.PriceMin, p.PriceMax,
		featured, sortBy, sortOrder, page, pageSize,
	)
	if err != nil {
		return nil, 0, classifyStoreError(err)
	}
	defer rows.Close()

	vehicles := make([]model.VehicleListItem, 0, pageSize)
	for rows.Next() {
		v, err := scanListItem(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classifyStoreError(err)
	}

	// Second result set carries the total count.  Some drivers append a
	// trailing OK result set after a CALL, so treat anything missing as 0
	// rather than failing.
	total := 0
	if rows.NextResultSet() && rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return nil, 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classifyStoreError(err)
	}
	return vehicles, total, nil
}

// Get calls sp_vehicle_get and returns the vehicle detail together with its
// images.  The procedure emits two result sets: zero-or-one vehicle row and
// zero-or-more image rows.  An empty first set means the vehicle does not
// exist or is unavailable; that is reported as ErrVehicleNotFound, never as
// an empty success.
func (r *VehicleRepo) Get(ctx context.Context, idVehicle int64) (*model.VehicleDetail, []model.VehicleImage, error) {
	const q = `CALL sp_vehicle_get(?)`
	rows, err := r.db.QueryContext(ctx, q, idVehicle)
	if err != nil {
		return nil, nil, classifyStoreError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, nil, classifyStoreError(err)
		}
		return nil, nil, ErrVehicleNotFound
	}
	v, err := scanDetail(rows)
	if err != nil {
		return nil, nil, err
	}

	images := []model.VehicleImage{}
	if rows.NextResultSet() {
		for rows.Next() {
			var img model.VehicleImage
			if err := rows.Scan(
				&img.IDVehicleImage, &img.IDVehicle, &img.ImageURL,
				&img.IsPrimary, &img.DisplayOrder, &img.DateCreated,
			); err != nil {
				return nil, nil, err
			}
			images = append(images, img)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, classifyStoreError(err)
	}
	return &v, images, nil
}

// scanListItem reads one row of the list result set in the store's fixed
// column order.
func scanListItem(rows *sql.Rows) (model.VehicleListItem, error) {
	var (
		v          model.VehicleListItem
		engineSize sql.NullFloat64
		doors      sql.NullInt64
		colorHex   sql.NullString
		primaryURL sql.NullString
	)
	err := rows.Scan(
		&v.IDVehicle, &v.Model, &v.Year, &v.Price, &v.Mileage, &v.Description,
		&engineSize, &doors, &v.Featured,
		&v.IDBrand, &v.BrandName,
		&v.IDFuelType, &v.FuelTypeName,
		&v.IDTransmission, &v.TransmissionName,
		&v.IDColor, &v.ColorName, &colorHex,
		&primaryURL,
	)
	if err != nil {
		return model.VehicleListItem{}, err
	}
	if engineSize.Valid {
		v.EngineSize = &engineSize.Float64
	}
	if doors.Valid {
		n := int(doors.Int64)
		v.Doors = &n
	}
	if colorHex.Valid {
		v.ColorHex = &colorHex.String
	}
	if primaryURL.Valid {
		v.PrimaryImageURL = &primaryURL.String
	}
	return v, nil
}

// scanDetail reads the single row of the detail result set.
func scanDetail(rows *sql.Rows) (model.VehicleDetail, error) {
	var (
		v          model.VehicleDetail
		engineSize sql.NullFloat64
		doors      sql.NullInt64
		colorHex   sql.NullString
	)
	err := rows.Scan(
		&v.IDVehicle, &v.Model, &v.Year, &v.Price, &v.Mileage, &v.Description,
		&engineSize, &doors, &v.Featured,
		&v.IDBrand, &v.BrandName, &v.BrandCode,
		&v.IDFuelType, &v.FuelTypeName, &v.FuelTypeCode,
		&v.IDTransmission, &v.TransmissionName, &v.TransmissionCode,
		&v.IDColor, &v.ColorName, &v.ColorCode, &colorHex,
		&v.DateCreated, &v.DateModified,
	)
	if err != nil {
		return model.VehicleDetail{}, err
	}
	if engineSize.Valid {
		v.EngineSize = &engineSize.Float64
	}
	if doors.Valid {
		n := int(doors.Int64)
		v.Doors = &n
	}
	if colorHex.Valid {
		v.ColorHex = &colorHex.String
	}
	return v, nil
}
