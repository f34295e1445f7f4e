/*

Package clock provides the alert/timer scheduling core of the trading
platform: a uniform, testable abstraction over wall-clock time that lets
strategies register one-shot alerts and repeating timers which produce
discrete, labeled TimeEvents.

Two interchangeable realizations share the Clock interface: LiveClock,
driven by the operating system's UTC time and real OS timers, and
TestClock, driven by explicit calls to AdvanceTime. Strategy code written
against the Clock interface behaves identically under backtest and live
trading.

A Label uniquely identifies at most one active timer and handler within a
single Clock at any moment; re-using a Label before cancelling or expiring
the prior timer is rejected with an *InvalidArgumentError.

*/
package clock
