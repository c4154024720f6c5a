package request

// CreateGroupRequest represents the request body for creating a display group
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// GroupMemberRequest represents the request body for linking or unlinking a
// position in a group.
type GroupMemberRequest struct {
	AssetClass string `json:"assetClass"`
	PositionID string `json:"positionId"`
}
