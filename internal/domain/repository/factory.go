package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Services() ServiceRepository
	Appointments() AppointmentRepository
	Comments() CommentRepository
	Contacts() ContactRepository
	Orders() OrderRepository
}
