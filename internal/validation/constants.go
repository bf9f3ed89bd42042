package validation

// MaxPaymentAmount is $999,999.99 in minor units. It mirrors the lte rule on
// payment amounts.
const MaxPaymentAmount = 99999999
