// Package chat holds the per-order message thread. Every order carries an
// append only conversation between the customer, staff and the driver.
package chat
