package validation

import (
	"strings"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

func ValidateCreateGroup(req request.CreateGroupRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateGroupMember(req request.GroupMemberRequest) error {
	errors := make(map[string]string)

	if !model.ValidAssetClass(model.AssetClass(req.AssetClass)) {
		errors["assetClass"] = "unknown asset class"
	}
	if err := ValidateUUID(req.PositionID); err != nil {
		errors["positionId"] = "positionId must be a valid UUID"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
