package entity

// Company representa una organización/tenant del sistema. Es la raíz de
// propiedad: bodegas y órdenes de venta pertenecen a una empresa y se
// eliminan en cascada con ella.
type Company struct {
	ID   int64
	Name string
}
