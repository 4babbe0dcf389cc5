package models

// ResourceType names a backend collection under /api/v1.
type ResourceType string

const (
	ResourceApprover        ResourceType = "approver"
	ResourceBookingDetails  ResourceType = "booking_details"
	ResourceDepartment      ResourceType = "department"
	ResourceFlier           ResourceType = "flier"
	ResourceFlightRequest   ResourceType = "flight_request"
	ResourceFormType        ResourceType = "form_type"
	ResourceNotification    ResourceType = "notification"
	ResourceProgressUpdate  ResourceType = "progress_update"
	ResourcePurposeOfTravel ResourceType = "purpose_of_travel"
	ResourceRequest         ResourceType = "request"
	ResourceRole            ResourceType = "role"
	ResourceStatusType      ResourceType = "status_type"
	ResourceUserCredentials ResourceType = "user_credentials"
	ResourceUserProfile     ResourceType = "user_profile"
)

// AllResources lists every backend collection the portal talks to.
var AllResources = []ResourceType{
	ResourceApprover,
	ResourceBookingDetails,
	ResourceDepartment,
	ResourceFlier,
	ResourceFlightRequest,
	ResourceFormType,
	ResourceNotification,
	ResourceProgressUpdate,
	ResourcePurposeOfTravel,
	ResourceRequest,
	ResourceRole,
	ResourceStatusType,
	ResourceUserCredentials,
	ResourceUserProfile,
}

// Valid reports whether r is a known backend collection.
func (r ResourceType) Valid() bool {
	for _, known := range AllResources {
		if r == known {
			return true
		}
	}
	return false
}

// Critical reports whether the portal's list views depend on the collection.
func (r ResourceType) Critical() bool {
	switch r {
	case ResourceRequest, ResourceUserCredentials, ResourceDepartment, ResourceFormType, ResourceStatusType:
		return true
	default:
		return false
	}
}
