package request

type ListLockersQuery struct {
	LocationID string `form:"locationId" binding:"omitempty,uuid"`
	Size       string `form:"size"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type NearbyLocationsQuery struct {
	Lat    *float64 `form:"lat" binding:"required"`
	Lon    *float64 `form:"lon" binding:"required"`
	Radius float64  `form:"radius"`
	Limit  int      `form:"limit" binding:"omitempty,min=1,max=200"`
}
