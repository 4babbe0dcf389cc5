package repository

import "github.com/noah-isme/hr-portal/internal/models"

// Backend groups a typed repository per backend collection.
type Backend struct {
	Approvers        *ResourceRepository[models.Approver]
	BookingDetails   *ResourceRepository[models.BookingDetails]
	Departments      *ResourceRepository[models.Department]
	Fliers           *ResourceRepository[models.Flier]
	FlightRequests   *ResourceRepository[models.FlightRequest]
	FormTypes        *ResourceRepository[models.FormType]
	Notifications    *ResourceRepository[models.Notification]
	ProgressUpdates  *ResourceRepository[models.ProgressUpdate]
	PurposesOfTravel *ResourceRepository[models.PurposeOfTravel]
	Requests         *ResourceRepository[models.Request]
	Roles            *ResourceRepository[models.RoleType]
	StatusTypes      *ResourceRepository[models.StatusType]
	Users            *ResourceRepository[models.UserCredentials]
	Profiles         *ResourceRepository[models.UserProfile]
}

// NewBackend wires every collection to client.
func NewBackend(client BackendClient) *Backend {
	return &Backend{
		Approvers:        NewResourceRepository[models.Approver](client, models.ResourceApprover),
		BookingDetails:   NewResourceRepository[models.BookingDetails](client, models.ResourceBookingDetails),
		Departments:      NewResourceRepository[models.Department](client, models.ResourceDepartment),
		Fliers:           NewResourceRepository[models.Flier](client, models.ResourceFlier),
		FlightRequests:   NewResourceRepository[models.FlightRequest](client, models.ResourceFlightRequest),
		FormTypes:        NewResourceRepository[models.FormType](client, models.ResourceFormType),
		Notifications:    NewResourceRepository[models.Notification](client, models.ResourceNotification),
		ProgressUpdates:  NewResourceRepository[models.ProgressUpdate](client, models.ResourceProgressUpdate),
		PurposesOfTravel: NewResourceRepository[models.PurposeOfTravel](client, models.ResourcePurposeOfTravel),
		Requests:         NewResourceRepository[models.Request](client, models.ResourceRequest),
		Roles:            NewResourceRepository[models.RoleType](client, models.ResourceRole),
		StatusTypes:      NewResourceRepository[models.StatusType](client, models.ResourceStatusType),
		Users:            NewResourceRepository[models.UserCredentials](client, models.ResourceUserCredentials),
		Profiles:         NewResourceRepository[models.UserProfile](client, models.ResourceUserProfile),
	}
}
