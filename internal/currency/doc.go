// Package currency models the pre-decimal British (£sd) monetary system:
// the coin and note denominations in circulation before decimalisation,
// composite pound/shilling/pence prices, and wallets tallying pieces of
// each denomination. All arithmetic happens in halfpence, the smallest
// indivisible unit, so amounts stay exact integers.
package currency
